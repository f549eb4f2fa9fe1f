package service

import (
	"sort"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

// DiagnoseJoin aponta as cidades de entrega sem município correspondente (com uma sugestão do
// município mais próximo) e as chaves de município repetidas, que multiplicam linhas no join.
func DiagnoseJoin(deliveries, regions *entity.Table) entity.Diagnostics {
	var diag entity.Diagnostics
	if deliveries == nil || regions == nil {
		return diag
	}
	munCol, ok := FindMunicipalityColumn(regions)
	if !ok {
		return diag
	}

	index := indexRegions(regions, munCol)
	keys := make([]string, 0, len(index))
	for k, rows := range index {
		if k == "" {
			continue
		}
		keys = append(keys, k)
		if len(rows) > 1 {
			diag.DuplicateRegionKeys = append(diag.DuplicateRegionKeys, k)
		}
	}
	sort.Strings(keys)
	sort.Strings(diag.DuplicateRegionKeys)

	cityCol := deliveries.ColumnIndex(entity.ColCidade)
	counts := map[string]int{}
	order := []string{}
	for i := range deliveries.Rows {
		key := NormalizeCell(deliveries.Value(i, cityCol))
		if _, matched := index[key]; matched {
			continue
		}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	for _, city := range order {
		diag.UnmatchedCities = append(diag.UnmatchedCities, entity.UnmatchedCity{
			City:       city,
			Deliveries: counts[city],
			Suggestion: SuggestMunicipality(city, keys),
		})
	}
	sort.SliceStable(diag.UnmatchedCities, func(i, j int) bool {
		return diag.UnmatchedCities[i].Deliveries > diag.UnmatchedCities[j].Deliveries
	})
	return diag
}

// SuggestMunicipality devolve o município mais parecido com a cidade, ou "" se nenhum for próximo.
// Primeiro tenta uma busca fuzzy (abreviações como "S PAULO"); depois a distância de Levenshtein.
func SuggestMunicipality(city string, candidates []string) string {
	if city == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(city, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(city, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > maxSuggestionDistance(city) {
		return ""
	}
	return best
}

func maxSuggestionDistance(s string) int {
	n := utf8.RuneCountInString(s) / 4
	if n < 1 {
		return 1
	}
	return n
}

// CountInvalidNumbers conta as células de valor e peso presentes que não puderam ser convertidas
// (e que, portanto, entraram como 0.0 nas somas).
func CountInvalidNumbers(t *entity.Table) (amounts, weights int) {
	if t == nil {
		return 0, 0
	}
	amountCol := t.ColumnIndex(entity.ColVlrAtendido)
	weightCol := t.ColumnIndex(entity.ColPesoTotal)
	for i := range t.Rows {
		if amountCol >= 0 {
			if _, ok := TryParseCurrency(t.Value(i, amountCol)); !ok {
				amounts++
			}
		}
		if weightCol >= 0 {
			if _, ok := TryParseWeight(t.Value(i, weightCol)); !ok {
				weights++
			}
		}
	}
	return amounts, weights
}
