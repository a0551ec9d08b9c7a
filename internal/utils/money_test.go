package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "typical amount", input: "1234.5", want: "R$ 1.234,50"},
		{name: "zero", input: "0", want: "R$ 0,00"},
		{name: "cents only", input: "0.07", want: "R$ 0,07"},
		{name: "no grouping", input: "999.99", want: "R$ 999,99"},
		{name: "exact thousand", input: "1000", want: "R$ 1.000,00"},
		{name: "millions", input: "1234567.89", want: "R$ 1.234.567,89"},
		{name: "negative", input: "-350", want: "-R$ 350,00"},
		{name: "rounds to two digits", input: "10.005", want: "R$ 10,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.input)))
		})
	}
}
