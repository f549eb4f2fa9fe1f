package service

import (
	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

const (
	leftSuffix  = "_x"
	rightSuffix = "_y"
)

// Join faz o left join das entregas com as regiões, casando a cidade normalizada da entrega com o
// município normalizado da região. Toda entrega aparece ao menos uma vez; quando várias regiões
// compartilham a mesma chave a entrega é repetida uma vez por região (fan-out). Entregas sem
// correspondência recebem colunas de região nulas.
func Join(deliveries, regions *entity.Table) (*entity.Table, error) {
	if deliveries == nil || regions == nil {
		return nil, types.ErrMissingDataset
	}

	munCol, ok := FindMunicipalityColumn(regions)
	if !ok {
		cols := make([]string, len(regions.Columns))
		copy(cols, regions.Columns)
		return nil, &types.ColumnNotFoundError{Columns: cols}
	}

	cityCol := deliveries.ColumnIndex(entity.ColCidade)

	index := indexRegions(regions, munCol)

	out := entity.NewTable(joinedColumns(deliveries.Columns, regions.Columns))
	width := len(deliveries.Columns) + len(regions.Columns)
	for i, drow := range deliveries.Rows {
		key := NormalizeCell(deliveries.Value(i, cityCol))
		matches := index[key]
		if len(matches) == 0 {
			row := make(entity.Row, width)
			copy(row, drow)
			out.Rows = append(out.Rows, row)
			continue
		}
		for _, ri := range matches {
			row := make(entity.Row, width)
			copy(row, drow)
			copy(row[len(deliveries.Columns):], regions.Rows[ri])
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

// indexRegions agrupa as linhas de região pela chave normalizada, preservando a ordem do arquivo.
func indexRegions(regions *entity.Table, munCol int) map[string][]int {
	index := make(map[string][]int, len(regions.Rows))
	for i := range regions.Rows {
		key := NormalizeCell(regions.Value(i, munCol))
		index[key] = append(index[key], i)
	}
	return index
}

// joinedColumns concatena os nomes das colunas; nomes presentes dos dois lados recebem _x/_y.
func joinedColumns(left, right []string) []string {
	inLeft := make(map[string]bool, len(left))
	for _, c := range left {
		inLeft[c] = true
	}
	inRight := make(map[string]bool, len(right))
	for _, c := range right {
		inRight[c] = true
	}

	out := make([]string, 0, len(left)+len(right))
	for _, c := range left {
		if inRight[c] {
			c += leftSuffix
		}
		out = append(out, c)
	}
	for _, c := range right {
		if inLeft[c] {
			c += rightSuffix
		}
		out = append(out, c)
	}
	return out
}
