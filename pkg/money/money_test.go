package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuelasur/booking/pkg/money"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency money.Currency
		expected string
		wantErr  bool
	}{
		{"CLP whole pesos", 11900, money.CLPCurrency, "11900 CLP", false},
		{"CLP zero", 0, money.CLPCurrency, "0 CLP", false},
		{"USD with cents", 10050, money.USDCurrency, "100.50 USD", false},
		{"invalid code", 100, money.Currency{Code: "clp", Decimals: 0}, "", true},
		{"too many decimals", 100, money.Currency{Code: "CLP", Decimals: 9}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(tt.amount, tt.currency)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, m.Amount())
			assert.Equal(t, tt.expected, m.String())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	clp100 := money.NewCLP(100)
	clp50 := money.NewCLP(50)
	usd100 := money.Must(10000, money.USDCurrency)

	t.Run("add same currency", func(t *testing.T) {
		result, err := clp100.Add(clp50)
		require.NoError(t, err)
		assert.Equal(t, int64(150), result.Amount())
		assert.Equal(t, money.CLP, result.CurrencyCode())
	})

	t.Run("add different currency", func(t *testing.T) {
		_, err := clp100.Add(usd100)
		require.Error(t, err)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
	})

	t.Run("subtract may go negative", func(t *testing.T) {
		result, err := clp50.Subtract(clp100)
		require.NoError(t, err)
		assert.Equal(t, int64(-50), result.Amount())
		assert.True(t, result.IsNegative())
	})

	t.Run("mulfrac truncates toward zero", func(t *testing.T) {
		m := money.NewCLP(10001)
		result, err := m.MulFrac(119, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(11901), result.Amount())
	})

	t.Run("mulfrac rejects non-positive denominator", func(t *testing.T) {
		_, err := clp100.MulFrac(119, 0)
		require.Error(t, err)
	})
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, money.NewCLP(0).IsZero())
	assert.True(t, (*money.Money)(nil).IsZero())
	assert.False(t, money.NewCLP(1).IsZero())
	assert.True(t, money.NewCLP(-1).IsNegative())
	assert.False(t, money.NewCLP(1).IsNegative())
	assert.True(t, money.NewCLP(5).Equals(money.NewCLP(5)))
	assert.False(t, money.NewCLP(5).Equals(money.Must(5, money.USDCurrency)))
}

func TestMoney_JSON(t *testing.T) {
	m := money.NewCLP(11900)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":11900,"currency":"CLP"}`, string(data))

	var decoded money.Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(11900), decoded.Amount())
	assert.Equal(t, money.CLP, decoded.CurrencyCode())

	var bad money.Money
	err = json.Unmarshal([]byte(`{"amount":1,"currency":"x"}`), &bad)
	require.Error(t, err)
}

func TestCode_IsValid(t *testing.T) {
	assert.True(t, money.CLP.IsValid())
	assert.True(t, money.Code("EUR").IsValid())
	assert.False(t, money.Code("cl").IsValid())
	assert.False(t, money.Code("CLPX").IsValid())
	assert.False(t, money.Code("cLP").IsValid())
}
