package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

// Filter mantém apenas as linhas cuja carga (N_Car) e região estão nas seleções.
// Seleções vazias não filtram; filtros sobre colunas inexistentes são ignorados.
func Filter(t *entity.Table, filters entity.Filters, regionColumn string) *entity.Table {
	if t == nil {
		return nil
	}
	out := t.Clone()
	out.Rows = filterRows(out, entity.ColCarga, filters.Loads)
	out.Rows = filterRows(out, regionColumn, filters.Regions)
	return out
}

func filterRows(t *entity.Table, column string, selected []string) []entity.Row {
	col := t.ColumnIndex(column)
	if len(selected) == 0 || col < 0 {
		return t.Rows
	}
	want := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		want[strings.TrimSpace(s)] = struct{}{}
	}
	kept := make([]entity.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		cell := row[col]
		if !cell.Valid {
			continue
		}
		if _, ok := want[strings.TrimSpace(cell.Value)]; ok {
			kept = append(kept, row)
		}
	}
	return kept
}

// FilterChoices lista, ordenados, os valores distintos não nulos de uma coluna.
// Valores numéricos ("2", "10") são ordenados pelo número e vêm antes dos textuais.
func FilterChoices(t *entity.Table, column string) []string {
	if t == nil {
		return nil
	}
	col := t.ColumnIndex(column)
	if col < 0 {
		return nil
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, row := range t.Rows {
		cell := row[col]
		if !cell.Valid {
			continue
		}
		if _, ok := seen[cell.Value]; ok {
			continue
		}
		seen[cell.Value] = struct{}{}
		out = append(out, cell.Value)
	}
	sort.Slice(out, func(i, j int) bool { return choiceLess(out[i], out[j]) })
	return out
}

func choiceLess(a, b string) bool {
	x, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	y, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	switch {
	case errA == nil && errB == nil && x != y:
		return x < y
	case errA == nil && errB != nil:
		return true
	case errA != nil && errB == nil:
		return false
	}
	return a < b
}

// ComputeKPIs conta as entregas e soma valor atendido e peso. Colunas ausentes somam 0.0.
func ComputeKPIs(t *entity.Table) entity.KPIs {
	kpis := entity.KPIs{Deliveries: t.Len()}
	if t == nil {
		return kpis
	}
	amountCol := t.ColumnIndex(entity.ColVlrAtendido)
	weightCol := t.ColumnIndex(entity.ColPesoTotal)
	for i := range t.Rows {
		if amountCol >= 0 {
			kpis.TotalAmount += ParseCurrency(t.Value(i, amountCol))
		}
		if weightCol >= 0 {
			kpis.TotalWeight += ParseWeight(t.Value(i, weightCol))
		}
	}
	return kpis
}

// FormatKPIs aplica a formatação de moeda e peso aos indicadores.
func FormatKPIs(k entity.KPIs) entity.FormattedKPIs {
	return entity.FormattedKPIs{
		Deliveries:  k.Deliveries,
		TotalAmount: FormatCurrency(k.TotalAmount),
		TotalWeight: FormatWeight(k.TotalWeight),
	}
}

// SummarizeByRegion soma o valor atendido por região (uma linha por região distinta, em ordem).
// Linhas sem região não entram no resumo. Sem a coluna de região devolve nil.
func SummarizeByRegion(t *entity.Table, regionColumn string) []entity.RegionSummary {
	if t == nil {
		return nil
	}
	regionCol := t.ColumnIndex(regionColumn)
	if regionCol < 0 {
		return nil
	}
	amountCol := t.ColumnIndex(entity.ColVlrAtendido)

	byRegion := map[string]*entity.RegionSummary{}
	for i := range t.Rows {
		region := t.Value(i, regionCol)
		if !region.Valid {
			continue
		}
		s, ok := byRegion[region.Value]
		if !ok {
			s = &entity.RegionSummary{Region: region.Value}
			byRegion[region.Value] = s
		}
		s.Deliveries++
		if amountCol >= 0 {
			s.TotalAmount += ParseCurrency(t.Value(i, amountCol))
		}
	}

	out := make([]entity.RegionSummary, 0, len(byRegion))
	for _, s := range byRegion {
		s.TotalFormatted = FormatCurrency(s.TotalAmount)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}
