package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/domain/repository"
	"github.com/diillson/entregas-dashboard-go/internal/domain/service"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
	"github.com/diillson/entregas-dashboard-go/pkg/version"
)

const (
	// DefaultMaxRows é o número de linhas da tabela de entregas exibidas no terminal.
	DefaultMaxRows = 50

	maxListedCities = 10
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	sourceRepo repository.SourceRepository
	loaderRepo repository.LoaderRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	sourceRepo repository.SourceRepository,
	loaderRepo repository.LoaderRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		sourceRepo: sourceRepo,
		loaderRepo: loaderRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// BuildDashboard é a passada de renderização pura: junta entregas e regiões, aplica os filtros e
// calcula indicadores, resumo por região, diagnósticos e as opções de filtro. Não faz I/O.
func BuildDashboard(deliveries, regions *entity.Table, filters entity.Filters, regionColumn string) (*entity.Dashboard, error) {
	if regionColumn == "" {
		regionColumn = entity.DefaultRegionColumn
	}

	joined, err := service.Join(deliveries, regions)
	if err != nil {
		return nil, err
	}

	filtered := service.Filter(joined, filters, regionColumn)
	kpis := service.ComputeKPIs(filtered)

	diag := service.DiagnoseJoin(deliveries, regions)
	diag.InvalidAmounts, diag.InvalidWeights = service.CountInvalidNumbers(filtered)

	return &entity.Dashboard{
		Filters:      filters,
		RegionColumn: regionColumn,
		KPIs:         kpis,
		Formatted:    service.FormatKPIs(kpis),
		Summary:      service.SummarizeByRegion(filtered, regionColumn),
		Detail:       filtered,
		Diagnostics:  diag,
		Choices: entity.FilterChoices{
			Loads:   service.FilterChoices(joined, entity.ColCarga),
			Regions: service.FilterChoices(joined, regionColumn),
		},
	}, nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if strings.TrimSpace(args.Entregas) == "" || strings.TrimSpace(args.Regioes) == "" {
		return types.ErrMissingDataset
	}

	opts, err := loadOptions(args)
	if err != nil {
		return err
	}

	src := types.SourceOptions{AWSProfile: args.AWSProfile, AWSRegion: args.AWSRegion}

	status := uc.console.Status("Loading delivery file...")
	deliveries, deliveryWarnings, err := uc.load(ctx, args.Entregas, src, opts, uc.loaderRepo.LoadDeliveries)
	if err != nil {
		status.Stop()
		uc.console.LogError("Failed to load delivery file: %s", err)
		return err
	}

	status.Update("Loading region file...")
	regions, regionWarnings, err := uc.load(ctx, args.Regioes, src, opts, uc.loaderRepo.LoadRegions)
	if err != nil {
		status.Stop()
		uc.console.LogError("Failed to load region file: %s", err)
		return err
	}
	status.Stop()

	uc.console.LogSuccess("Delivery file loaded: %d rows", deliveries.Len())
	uc.console.LogSuccess("Region file loaded: %d rows", regions.Len())
	uc.console.LogDebug("Region columns: %s", strings.Join(regions.Columns, ", "))

	filters := entity.Filters{Loads: args.Loads, Regions: args.Regions}
	dashboard, err := BuildDashboard(deliveries, regions, filters, args.RegionColumn)
	if err != nil {
		uc.console.LogError("%s", err)
		return err
	}
	dashboard.RunID = uuid.NewString()
	dashboard.GeneratedAt = time.Now()
	dashboard.AppVersion = version.FormatVersion()
	dashboard.Diagnostics.LoadWarnings = append(deliveryWarnings, regionWarnings...)

	if args.ListFilters {
		uc.displayFilterChoices(dashboard.Choices)
		return nil
	}

	uc.displayDashboard(dashboard, args.MaxRows)
	uc.displayDiagnostics(dashboard.Diagnostics)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(dashboard, args)
	}
	return nil
}

type loadFunc func(entity.SourceFile, types.LoadOptions) (*entity.Table, []string, error)

func (uc *DashboardUseCase) load(ctx context.Context, location string, src types.SourceOptions, opts types.LoadOptions, fn loadFunc) (*entity.Table, []string, error) {
	file, err := uc.sourceRepo.Fetch(ctx, location, src)
	if err != nil {
		return nil, nil, err
	}
	uc.console.LogDebug("Fetched %s (%d bytes)", file.Location, len(file.Content))
	return fn(file, opts)
}

func loadOptions(args *types.CLIArgs) (types.LoadOptions, error) {
	opts := types.LoadOptions{Encoding: args.Encoding, Sheet: args.Sheet}
	switch args.Delimiter {
	case "", ",":
		opts.Delimiter = ','
	case `\t`, "tab":
		opts.Delimiter = '\t'
	default:
		r := []rune(args.Delimiter)
		if len(r) != 1 || r[0] == '"' || r[0] == '\r' || r[0] == '\n' {
			return opts, fmt.Errorf("invalid delimiter %q", args.Delimiter)
		}
		opts.Delimiter = r[0]
	}
	return opts, nil
}

// --- Exibição ---

func (uc *DashboardUseCase) displayDashboard(d *entity.Dashboard, maxRows int) {
	uc.console.DisplayMetrics("Indicadores Gerais", []types.Metric{
		{Label: "Quantidade de Entregas", Value: strconv.Itoa(d.Formatted.Deliveries)},
		{Label: "Valor Atendido", Value: d.Formatted.TotalAmount},
		{Label: "Peso Total (kg)", Value: d.Formatted.TotalWeight},
	})

	if maxRows == 0 {
		maxRows = DefaultMaxRows
	}
	uc.console.Println(pterm.FgLightCyan.Sprint("\nTabela de Entregas (Filtrada)"))
	table := uc.console.CreateTable()
	for _, c := range d.Detail.Columns {
		table.AddColumn(c)
	}
	shown := len(d.Detail.Rows)
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}
	for _, row := range d.Detail.Rows[:shown] {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c.String()
		}
		table.AddRow(cells...)
	}
	uc.console.Print(table.Render())
	if shown < len(d.Detail.Rows) {
		uc.console.LogInfo("Showing %d of %d rows (use --max-rows -1 to show all)", shown, len(d.Detail.Rows))
	}

	if !d.Detail.HasColumn(d.RegionColumn) {
		uc.console.LogWarning("Column '%s' not found in the joined table; region summary skipped", d.RegionColumn)
		return
	}

	uc.console.Println(pterm.FgLightCyan.Sprint("\nResumo por Região (Valor Atendido)"))
	summary := uc.console.CreateTable()
	summary.AddColumn(d.RegionColumn)
	summary.AddColumn("Entregas")
	summary.AddColumn("Total_Atendido")
	bars := make([]types.RegionBar, 0, len(d.Summary))
	for _, s := range d.Summary {
		summary.AddRow(s.Region, s.Deliveries, s.TotalFormatted)
		bars = append(bars, types.RegionBar{Region: s.Region, Amount: s.TotalAmount, Label: s.TotalFormatted})
	}
	uc.console.Print(summary.Render())
	uc.console.DisplayRegionBars(bars)
}

func (uc *DashboardUseCase) displayDiagnostics(diag entity.Diagnostics) {
	for _, w := range diag.LoadWarnings {
		uc.console.LogWarning("%s", w)
	}

	if n := len(diag.DuplicateRegionKeys); n > 0 {
		uc.console.LogWarning("%d municipality key(s) appear more than once in the region file; matching deliveries are repeated once per region row: %s",
			n, strings.Join(diag.DuplicateRegionKeys, ", "))
	}

	if len(diag.UnmatchedCities) > 0 {
		total := 0
		for _, c := range diag.UnmatchedCities {
			total += c.Deliveries
		}
		uc.console.LogWarning("%d deliveries in %d cities have no matching region", total, len(diag.UnmatchedCities))

		limit := len(diag.UnmatchedCities)
		if limit > maxListedCities {
			limit = maxListedCities
		}
		table := uc.console.CreateTable()
		table.AddColumn("Cidade")
		table.AddColumn("Entregas")
		table.AddColumn("Sugestão")
		for _, c := range diag.UnmatchedCities[:limit] {
			city := c.City
			if city == "" {
				city = "(vazio)"
			}
			suggestion := c.Suggestion
			if suggestion == "" {
				suggestion = "-"
			}
			table.AddRow(city, c.Deliveries, suggestion)
		}
		uc.console.Print(table.Render())
		if len(diag.UnmatchedCities) > limit {
			uc.console.LogInfo("... (+%d more)", len(diag.UnmatchedCities)-limit)
		}
	}

	if diag.InvalidAmounts > 0 {
		uc.console.LogWarning("%d amount value(s) could not be parsed and were counted as R$ 0,00", diag.InvalidAmounts)
	}
	if diag.InvalidWeights > 0 {
		uc.console.LogWarning("%d weight value(s) could not be parsed and were counted as 0,00", diag.InvalidWeights)
	}
}

func (uc *DashboardUseCase) displayFilterChoices(choices entity.FilterChoices) {
	uc.console.LogInfo("Available load numbers (%s): %d", entity.ColCarga, len(choices.Loads))
	uc.console.Println(strings.Join(choices.Loads, ", "))
	uc.console.LogInfo("Available regions: %d", len(choices.Regions))
	uc.console.Println(strings.Join(choices.Regions, ", "))
}

// --- Exportação ---

func (uc *DashboardUseCase) exportReports(d *entity.Dashboard, args *types.CLIArgs) {
	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	defer progress.Stop()

	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			paths, err := uc.exportRepo.ExportToCSV(d, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", strings.Join(paths, ", "))
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(d, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(d, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(d, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored (use csv, json, pdf or xlsx)", reportType)
		}
		progress.Increment()
	}
}
