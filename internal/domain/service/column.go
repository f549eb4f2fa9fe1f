package service

import (
	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

// FindMunicipalityColumn procura, na ordem declarada, a primeira coluna cujo nome normalizado
// é um dos sinônimos de município (MUNICIPIO, MUNICIPIOS, CIDADE, CIDADES).
func FindMunicipalityColumn(t *entity.Table) (int, bool) {
	if t == nil {
		return -1, false
	}
	for i, col := range t.Columns {
		if isMunicipalityName(Normalize(col)) {
			return i, true
		}
	}
	return -1, false
}

func isMunicipalityName(normalized string) bool {
	for _, alias := range entity.MunicipalityAliases {
		if normalized == alias {
			return true
		}
	}
	return false
}
