package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

// CurrencySymbol é o prefixo monetário removido antes da conversão.
const CurrencySymbol = "R$"

// ParseCurrency converte um valor monetário no formato brasileiro ("R$ 1.234,56") em float.
// Valores ausentes ou inválidos viram 0.0.
func ParseCurrency(raw entity.Cell) float64 {
	v, _ := TryParseCurrency(raw)
	return v
}

// ParseWeight converte um peso no formato brasileiro ("1.234,56") em float.
// Valores ausentes ou inválidos viram 0.0.
func ParseWeight(raw entity.Cell) float64 {
	v, _ := TryParseWeight(raw)
	return v
}

// ParseCurrencyString é ParseCurrency para texto puro.
func ParseCurrencyString(raw string) float64 {
	return ParseCurrency(entity.Text(raw))
}

// ParseWeightString é ParseWeight para texto puro.
func ParseWeightString(raw string) float64 {
	return ParseWeight(entity.Text(raw))
}

// TryParseCurrency é como ParseCurrency, mas indica se um valor não vazio falhou na conversão.
// ok=false só é devolvido para texto presente que não pôde ser lido como número.
func TryParseCurrency(raw entity.Cell) (float64, bool) {
	if !raw.Valid || strings.TrimSpace(raw.Value) == "" {
		return 0, true
	}
	return parseLocaleNumber(strings.ReplaceAll(raw.Value, CurrencySymbol, ""))
}

// TryParseWeight é a variante de diagnóstico de ParseWeight.
func TryParseWeight(raw entity.Cell) (float64, bool) {
	if !raw.Valid || strings.TrimSpace(raw.Value) == "" {
		return 0, true
	}
	return parseLocaleNumber(raw.Value)
}

// parseLocaleNumber remove o separador de milhar ".", troca a vírgula decimal por "." e converte.
func parseLocaleNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
