package payment

import (
	"fmt"

	"github.com/vuelasur/booking/pkg/money"
)

// Chilean IVA, applied to the base fare. The gateway only accepts whole
// pesos, so the total is floor(base * 1.19) computed in integer space.
const (
	ivaNumerator   = 119
	ivaDenominator = 100
)

// Quote is the amount breakdown charged for a transaction.
type Quote struct {
	Base  *money.Money
	Tax   *money.Money
	Total *money.Money
}

// QuoteCLP computes the IVA-inclusive charge for a base fare in whole
// pesos. The base must be non-negative; the tax is the difference between
// the floored total and the base.
func QuoteCLP(base int64) (*Quote, error) {
	if base < 0 {
		return nil, fmt.Errorf("%w: %d", money.ErrNegativeAmount, base)
	}
	baseMoney := money.NewCLP(base)
	total, err := baseMoney.MulFrac(ivaNumerator, ivaDenominator)
	if err != nil {
		return nil, err
	}
	tax, err := total.Subtract(baseMoney)
	if err != nil {
		return nil, err
	}
	return &Quote{Base: baseMoney, Tax: tax, Total: total}, nil
}
