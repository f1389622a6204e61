package numword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero Only"},
		{1, "One Only"},
		{7, "Seven Only"},
		{10, "Ten Only"},
		{11, "Eleven Only"},
		{19, "Nineteen Only"},
		{20, "Twenty Only"},
		{21, "Twenty One Only"},
		{99, "Ninety Nine Only"},
		{100, "One Hundred Only"},
		{110, "One Hundred Ten Only"},
		{350, "Three Hundred Fifty Only"},
		{999, "Nine Hundred Ninety Nine Only"},
		{1000, "One Thousand Only"},
		{1001, "One Thousand One Only"},
		{25000, "Twenty Five Thousand Only"},
		{100000, "One Lakh Only"},
		{125000, "One Lakh Twenty Five Thousand Only"},
		{1500000, "Fifteen Lakh Only"},
		{10000000, "One Crore Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{-500, "Negative Five Hundred Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToWords(tc.amount), "amount %d", tc.amount)
	}
}

func TestToWords_Deterministic(t *testing.T) {
	first := ToWords(987654321)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ToWords(987654321))
	}
}

func TestToWords_NegativeMirrorsPositive(t *testing.T) {
	assert.Equal(t, "Negative "+ToWords(500), ToWords(-500))
}
