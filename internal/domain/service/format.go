package service

import (
	"strconv"
	"strings"
)

// FormatCurrency formata um valor no padrão brasileiro: 1234567.89 -> "R$ 1.234.567,89".
func FormatCurrency(v float64) string {
	return CurrencySymbol + " " + formatBR(v)
}

// FormatWeight formata um peso no padrão brasileiro, sem prefixo: 1234.5 -> "1.234,50".
func FormatWeight(v float64) string {
	return formatBR(v)
}

// formatBR usa "." como separador de milhar, "," como decimal e sempre duas casas.
func formatBR(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, found := strings.Cut(s, ".")
	if !found {
		// NaN / Inf
		return sign + s
	}
	return sign + groupThousands(intPart) + "," + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
