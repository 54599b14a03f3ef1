package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "R$ 0,00"},
		{amount: 850, want: "R$ 850,00"},
		{amount: 7500, want: "R$ 7.500,00"},
		{amount: 12800.5, want: "R$ 12.800,50"},
		{amount: 100.01, want: "R$ 100,01"},
		{amount: 1234567.89, want: "R$ 1.234.567,89"},
		{amount: -35000, want: "-R$ 35.000,00"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, FormatBRL(tc.amount))
	}
}
