package repository

import (
	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(dashboard *entity.Dashboard, filename string, outputDir string) ([]string, error)
	ExportToJSON(dashboard *entity.Dashboard, filename string, outputDir string) (string, error)
	ExportToPDF(dashboard *entity.Dashboard, filename string, outputDir string) (string, error)
	ExportToXLSX(dashboard *entity.Dashboard, filename string, outputDir string) (string, error)
}
