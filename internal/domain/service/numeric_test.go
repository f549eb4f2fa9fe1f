package service

import (
	"testing"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "with symbol", input: "R$ 1.234,56", want: 1234.56},
		{name: "symbol without space", input: "R$100,00", want: 100},
		{name: "multiple thousands separators", input: "1.234.567,89", want: 1234567.89},
		{name: "plain integer", input: "100", want: 100},
		{name: "decimal comma only", input: "12,5", want: 12.5},
		{name: "negative", input: "-50,00", want: -50},
		{name: "surrounding spaces", input: "  R$ 7,00  ", want: 7},
		{name: "empty", input: "", want: 0},
		{name: "symbol only", input: "R$", want: 0},
		{name: "garbage", input: "abc", want: 0},
		{name: "nan literal", input: "NaN", want: 0},
		{name: "infinity literal", input: "Inf", want: 0},
		{name: "hex float", input: "0x1p-2", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseCurrencyString(tt.input); got != tt.want {
				t.Errorf("ParseCurrencyString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCurrencyNull(t *testing.T) {
	t.Parallel()

	if got := ParseCurrency(entity.Null()); got != 0 {
		t.Errorf("ParseCurrency(NULL) = %v, want 0", got)
	}
}

func TestParseWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{input: "1.234,5", want: 1234.5},
		{input: "1.234,50", want: 1234.5},
		{input: "10,00", want: 10},
		{input: "0,25", want: 0.25},
		{input: "", want: 0},
		{input: "n/d", want: 0},
		// o símbolo de moeda não é removido de pesos
		{input: "R$ 10,00", want: 0},
	}
	for _, tt := range tests {
		if got := ParseWeightString(tt.input); got != tt.want {
			t.Errorf("ParseWeightString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if got := ParseWeight(entity.Null()); got != 0 {
		t.Errorf("ParseWeight(NULL) = %v, want 0", got)
	}
}

func TestTryParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cell   entity.Cell
		wantOK bool
	}{
		{name: "null is not a failure", cell: entity.Null(), wantOK: true},
		{name: "blank is not a failure", cell: entity.Text("  "), wantOK: true},
		{name: "valid", cell: entity.Text("1.000,00"), wantOK: true},
		{name: "garbage", cell: entity.Text("abc"), wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := TryParseCurrency(tt.cell); ok != tt.wantOK {
				t.Errorf("TryParseCurrency(%+v) ok = %v, want %v", tt.cell, ok, tt.wantOK)
			}
			if _, ok := TryParseWeight(tt.cell); ok != tt.wantOK {
				t.Errorf("TryParseWeight(%+v) ok = %v, want %v", tt.cell, ok, tt.wantOK)
			}
		})
	}
}
