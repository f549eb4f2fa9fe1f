package repository

import (
	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// LoaderRepository converte arquivos brutos em tabelas.
type LoaderRepository interface {
	LoadDeliveries(file entity.SourceFile, opts types.LoadOptions) (*entity.Table, []string, error)
	LoadRegions(file entity.SourceFile, opts types.LoadOptions) (*entity.Table, []string, error)
}
