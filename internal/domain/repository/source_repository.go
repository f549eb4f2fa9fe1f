package repository

import (
	"context"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// SourceRepository defines how raw input files are fetched (local disk, S3).
type SourceRepository interface {
	Fetch(ctx context.Context, location string, opts types.SourceOptions) (entity.SourceFile, error)
}
