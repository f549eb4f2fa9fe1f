package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

func TestJoinMatchesNormalizedKeys(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(
		deliveryRecord("Recife", "10", "R$ 100,00", "10,00"),
		deliveryRecord("São Paulo", "20", "R$ 50,00", "5,00"),
	)
	regions := newRegions(
		[]string{"RECIFE", "Nordeste"},
		[]string{"sao paulo ", "Sudeste"},
	)

	joined, err := Join(deliveries, regions)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if joined.Len() != 2 {
		t.Fatalf("Join() rows = %d, want 2", joined.Len())
	}
	want := []entity.Cell{entity.Text("Nordeste"), entity.Text("Sudeste")}
	if got := column(joined, "Região"); !reflect.DeepEqual(got, want) {
		t.Errorf("Região = %v, want %v", got, want)
	}
	wantCols := append(append([]string{}, entity.DeliveryColumns...), "Município", "Região")
	if !reflect.DeepEqual(joined.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", joined.Columns, wantCols)
	}
}

func TestJoinKeepsUnmatchedDeliveries(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(
		deliveryRecord("Caruaru", "10", "R$ 1,00", "1,00"),
		deliveryRecord("Recife", "10", "R$ 2,00", "1,00"),
	)
	regions := newRegions([]string{"RECIFE", "Nordeste"})

	joined, err := Join(deliveries, regions)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if joined.Len() != 2 {
		t.Fatalf("Join() rows = %d, want 2", joined.Len())
	}
	regionCol := joined.ColumnIndex("Região")
	if got := joined.Value(0, regionCol); got.Valid {
		t.Errorf("unmatched delivery got region %q, want NULL", got.Value)
	}
	if got := joined.Value(1, regionCol); got != entity.Text("Nordeste") {
		t.Errorf("matched delivery region = %+v, want Nordeste", got)
	}
	if got := joined.Value(0, joined.ColumnIndex(entity.ColCidade)); got != entity.Text("Caruaru") {
		t.Errorf("delivery columns not preserved: Cidade = %+v", got)
	}
}

func TestJoinFansOutDuplicateKeys(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(
		deliveryRecord("Recife", "10", "R$ 100,00", "10,00"),
		deliveryRecord("Olinda", "10", "R$ 5,00", "1,00"),
	)
	regions := newRegions(
		[]string{"Recife", "Nordeste"},
		[]string{"RECIFE", "Metropolitana"},
		[]string{"Olinda", "Metropolitana"},
	)

	joined, err := Join(deliveries, regions)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	want := []entity.Cell{entity.Text("Nordeste"), entity.Text("Metropolitana"), entity.Text("Metropolitana")}
	if got := column(joined, "Região"); !reflect.DeepEqual(got, want) {
		t.Errorf("Região = %v, want %v", got, want)
	}
}

func TestJoinCampinasFanOut(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(deliveryRecord("Campinas", "10", "R$ 10,00", "1,00"))
	regions := newRegions(
		[]string{"CAMPINAS", "Sudeste"},
		[]string{"Campinas ", "Interior SP"},
	)

	joined, err := Join(deliveries, regions)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if joined.Len() != 2 {
		t.Fatalf("Join() rows = %d, want 2", joined.Len())
	}
	if kpis := ComputeKPIs(joined); kpis.TotalAmount != 20 {
		t.Errorf("fan-out rows are counted twice in the totals: got %v, want 20", kpis.TotalAmount)
	}
}

func TestJoinSuffixesOverlappingColumns(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(deliveryRecord("RECIFE", "10", "R$ 1,00", "1,00"))
	regions := newTable([]string{"Cidade", "Região"}, []string{"Recife", "Nordeste"})

	joined, err := Join(deliveries, regions)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if !joined.HasColumn("Cidade_x") || !joined.HasColumn("Cidade_y") {
		t.Fatalf("columns = %v, want Cidade_x and Cidade_y", joined.Columns)
	}
	if joined.HasColumn(entity.ColCidade) {
		t.Errorf("unsuffixed Cidade column should not exist: %v", joined.Columns)
	}
	if got := joined.Value(0, joined.ColumnIndex("Cidade_y")); got != entity.Text("Recife") {
		t.Errorf("Cidade_y = %+v, want Recife", got)
	}
}

func TestJoinEmptyKeysMatch(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(deliveryRecord("", "10", "R$ 1,00", "1,00"))
	deliveries.Rows[0][deliveries.ColumnIndex(entity.ColCidade)] = entity.Null()
	regions := newRegions([]string{"  ", "Sem Município"})

	joined, err := Join(deliveries, regions)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if got := joined.Value(0, joined.ColumnIndex("Região")); got != entity.Text("Sem Município") {
		t.Errorf("Região = %+v, want Sem Município", got)
	}
}

func TestJoinErrors(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(deliveryRecord("Recife", "10", "R$ 1,00", "1,00"))

	if _, err := Join(nil, newRegions()); !errors.Is(err, types.ErrMissingDataset) {
		t.Errorf("Join(nil, regions) error = %v, want ErrMissingDataset", err)
	}
	if _, err := Join(deliveries, nil); !errors.Is(err, types.ErrMissingDataset) {
		t.Errorf("Join(deliveries, nil) error = %v, want ErrMissingDataset", err)
	}

	regions := newTable([]string{"city", "Região"}, []string{"Recife", "Nordeste"})
	_, err := Join(deliveries, regions)
	if !errors.Is(err, types.ErrColumnNotFound) {
		t.Fatalf("Join() error = %v, want ErrColumnNotFound", err)
	}
	var notFound *types.ColumnNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Join() error %T is not *ColumnNotFoundError", err)
	}
	if !reflect.DeepEqual(notFound.Columns, []string{"city", "Região"}) {
		t.Errorf("Columns = %v, want [city Região]", notFound.Columns)
	}
}
