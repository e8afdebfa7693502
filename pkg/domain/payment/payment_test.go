package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuelasur/booking/pkg/domain/payment"
	"github.com/vuelasur/booking/pkg/money"
)

func TestQuoteCLP(t *testing.T) {
	tests := []struct {
		name      string
		base      int64
		wantTotal int64
		wantTax   int64
		wantErr   bool
	}{
		{"typical fare", 10000, 11900, 1900, false},
		{"zero base", 0, 0, 0, false},
		{"one peso", 1, 1, 0, false},
		{"floors fractional pesos", 10001, 11901, 1900, false},
		{"another floor case", 99, 117, 18, false},
		{"large fare", 2_500_000, 2_975_000, 475_000, false},
		{"negative base", -1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := payment.QuoteCLP(tt.base)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrNegativeAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.base, q.Base.Amount())
			assert.Equal(t, tt.wantTotal, q.Total.Amount())
			assert.Equal(t, tt.wantTax, q.Tax.Amount())
			assert.Equal(t, money.CLP, q.Total.CurrencyCode())
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		responseCode int
		want         payment.Status
	}{
		{"authorized with ok code", "AUTHORIZED", 0, payment.StatusApproved},
		{"authorized with non-zero code", "AUTHORIZED", -1, payment.StatusPending},
		{"failed", "FAILED", 0, payment.StatusRejected},
		{"failed with non-zero code", "FAILED", -96, payment.StatusRejected},
		{"unexpected intermediate state", "INITIALIZED", 0, payment.StatusPending},
		{"empty status", "", 0, payment.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.Classify(tt.status, tt.responseCode))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, payment.StatusPending.IsTerminal())
	assert.True(t, payment.StatusApproved.IsTerminal())
	assert.True(t, payment.StatusRejected.IsTerminal())
}

func TestPaymentTypeDescription(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"VD", "Tarjeta de Débito"},
		{"VN", "Tarjeta de Crédito"},
		{"VC", "Tarjeta de Crédito"},
		{"SI", "Sin Interés"},
		{"S2", "2 cuotas sin interés"},
		{"S3", "3 cuotas sin interés"},
		{"N2", "2 cuotas con interés"},
		{"N3", "3 cuotas con interés"},
		{"N4", "4 cuotas con interés"},
		{"ZZ", "Type ZZ"},
		{"", "Type "},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.PaymentTypeDescription(tt.code))
		})
	}
}

func TestConfirmation_CardLastFour(t *testing.T) {
	c := &payment.Confirmation{CardNumber: "XXXXXXXXXXXX6623"}
	assert.Equal(t, "6623", c.CardLastFour())

	assert.Equal(t, "", (&payment.Confirmation{CardNumber: "12"}).CardLastFour())
	assert.Equal(t, "", (&payment.Confirmation{}).CardLastFour())
	assert.Equal(t, "", (*payment.Confirmation)(nil).CardLastFour())
}
