package service

import (
	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

// deliveryRecord monta uma linha de entrega com as 13 colunas posicionais.
func deliveryRecord(city, load, amount, weight string) []string {
	return []string{"01/10/2024", "1001", "5001", "TV1", load, "1", "C01", "Mercadinho Bom Preço", city, "PR01", "R01", amount, weight}
}

func newTable(columns []string, records ...[]string) *entity.Table {
	t := entity.NewTable(columns)
	for _, rec := range records {
		row := make(entity.Row, len(rec))
		for i, v := range rec {
			row[i] = entity.Text(v)
		}
		t.AppendRow(row)
	}
	return t
}

func newDeliveries(records ...[]string) *entity.Table {
	return newTable(entity.DeliveryColumns, records...)
}

func newRegions(records ...[]string) *entity.Table {
	return newTable([]string{"Município", "Região"}, records...)
}

func column(t *entity.Table, name string) []entity.Cell {
	idx := t.ColumnIndex(name)
	out := make([]entity.Cell, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Value(i, idx)
	}
	return out
}
