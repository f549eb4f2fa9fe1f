package service

import (
	"reflect"
	"testing"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

func TestDiagnoseJoin(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(
		deliveryRecord("Recife", "10", "R$ 1,00", "1,00"),
		deliveryRecord("Caruaru", "10", "R$ 1,00", "1,00"),
		deliveryRecord("Recif", "10", "R$ 1,00", "1,00"),
		deliveryRecord("RECIF", "10", "R$ 1,00", "1,00"),
	)
	regions := newRegions(
		[]string{"Recife", "Nordeste"},
		[]string{"RECIFE", "Metropolitana"},
		[]string{"Olinda", "Metropolitana"},
	)

	diag := DiagnoseJoin(deliveries, regions)

	if want := []string{"RECIFE"}; !reflect.DeepEqual(diag.DuplicateRegionKeys, want) {
		t.Errorf("DuplicateRegionKeys = %v, want %v", diag.DuplicateRegionKeys, want)
	}
	want := []entity.UnmatchedCity{
		{City: "RECIF", Deliveries: 2, Suggestion: "RECIFE"},
		{City: "CARUARU", Deliveries: 1},
	}
	if !reflect.DeepEqual(diag.UnmatchedCities, want) {
		t.Errorf("UnmatchedCities = %+v, want %+v", diag.UnmatchedCities, want)
	}
}

func TestDiagnoseJoinWithoutMunicipalityColumn(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(deliveryRecord("Recife", "10", "R$ 1,00", "1,00"))
	regions := newTable([]string{"city"}, []string{"Recife"})
	if diag := DiagnoseJoin(deliveries, regions); diag.UnmatchedCities != nil || diag.DuplicateRegionKeys != nil {
		t.Errorf("DiagnoseJoin() = %+v, want empty", diag)
	}
}

func TestSuggestMunicipality(t *testing.T) {
	t.Parallel()

	candidates := []string{"OLINDA", "RECIFE", "SAO PAULO"}
	tests := []struct {
		city string
		want string
	}{
		{city: "S PAULO", want: "SAO PAULO"},
		{city: "RECIFF", want: "RECIFE"},
		{city: "XYZ", want: ""},
		{city: "", want: ""},
	}
	for _, tt := range tests {
		if got := SuggestMunicipality(tt.city, candidates); got != tt.want {
			t.Errorf("SuggestMunicipality(%q) = %q, want %q", tt.city, got, tt.want)
		}
	}
	if got := SuggestMunicipality("RECIFE", nil); got != "" {
		t.Errorf("SuggestMunicipality without candidates = %q, want empty", got)
	}
}

func TestCountInvalidNumbers(t *testing.T) {
	t.Parallel()

	deliveries := newDeliveries(
		deliveryRecord("Recife", "10", "R$ 10,00", "1,0"),
		deliveryRecord("Recife", "10", "abc", "x"),
		deliveryRecord("Recife", "10", "", "2,5"),
	)
	deliveries.Rows[0][deliveries.ColumnIndex(entity.ColVlrAtendido)] = entity.Null()

	amounts, weights := CountInvalidNumbers(deliveries)
	if amounts != 1 || weights != 1 {
		t.Errorf("CountInvalidNumbers() = (%d, %d), want (1, 1)", amounts, weights)
	}
}
