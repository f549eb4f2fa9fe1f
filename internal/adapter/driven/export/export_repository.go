package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/domain/repository"
)

const (
	labelDeliveries = "Quantidade de Entregas"
	labelAmount     = "Valor Atendido"
	labelWeight     = "Peso Total (kg)"
	labelTotal      = "Total_Atendido"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- CSV ---

// ExportToCSV grava dois arquivos: a tabela de entregas filtrada e o resumo por região.
func (r *ExportRepositoryImpl) ExportToCSV(d *entity.Dashboard, filename, outputDir string) ([]string, error) {
	if err := checkDashboard(d); err != nil {
		return nil, err
	}
	detailPath, err := generateFilename(filename+"_entregas", outputDir, "csv")
	if err != nil {
		return nil, err
	}
	detail := [][]string{d.Detail.Columns}
	for _, row := range d.Detail.Rows {
		detail = append(detail, row.Strings())
	}
	if err := writeCSV(detailPath, detail); err != nil {
		return nil, err
	}

	summaryPath, err := generateFilename(filename+"_resumo", outputDir, "csv")
	if err != nil {
		return nil, err
	}
	summary := [][]string{{d.RegionColumn, "Entregas", labelTotal}}
	for _, s := range d.Summary {
		summary = append(summary, []string{s.Region, strconv.Itoa(s.Deliveries), s.TotalFormatted})
	}
	if err := writeCSV(summaryPath, summary); err != nil {
		return nil, err
	}

	paths := make([]string, 0, 2)
	for _, p := range []string{detailPath, summaryPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

func writeCSV(path string, records [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer closeFile(file, "CSV", &err)

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// closeFile fecha o relatório recém-gravado; uma falha no Close vira o erro da exportação,
// a menos que a escrita já tenha falhado.
func closeFile(c io.Closer, kind string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("error closing %s file: %w", kind, cerr)
	}
}

// --- JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(d *entity.Dashboard, filename, outputDir string) (path string, err error) {
	if err := checkDashboard(d); err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer closeFile(file, "JSON", &err)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- XLSX ---

// ExportToXLSX grava uma planilha com as abas Indicadores, Resumo e Entregas.
func (r *ExportRepositoryImpl) ExportToXLSX(d *entity.Dashboard, filename, outputDir string) (string, error) {
	if err := checkDashboard(d); err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const kpiSheet, summarySheet, detailSheet = "Indicadores", "Resumo", "Entregas"
	if err := f.SetSheetName(f.GetSheetName(0), kpiSheet); err != nil {
		return "", fmt.Errorf("error preparing spreadsheet: %w", err)
	}
	for _, name := range []string{summarySheet, detailSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("error creating sheet %s: %w", name, err)
		}
	}

	kpiRows := [][]any{
		{"Indicador", "Valor", "Formatado"},
		{labelDeliveries, d.KPIs.Deliveries, strconv.Itoa(d.Formatted.Deliveries)},
		{labelAmount, d.KPIs.TotalAmount, d.Formatted.TotalAmount},
		{labelWeight, d.KPIs.TotalWeight, d.Formatted.TotalWeight},
		{},
		{"Execução", d.RunID},
		{"Gerado em", d.GeneratedAt.Format(time.RFC3339)},
		{"Versão", d.AppVersion},
	}
	if err := writeSheet(f, kpiSheet, kpiRows); err != nil {
		return "", err
	}

	summaryRows := [][]any{{d.RegionColumn, "Entregas", labelTotal, "Total (R$)"}}
	for _, s := range d.Summary {
		summaryRows = append(summaryRows, []any{s.Region, s.Deliveries, s.TotalFormatted, s.TotalAmount})
	}
	if err := writeSheet(f, summarySheet, summaryRows); err != nil {
		return "", err
	}

	detailRows := make([][]any, 0, len(d.Detail.Rows)+1)
	header := make([]any, len(d.Detail.Columns))
	for i, c := range d.Detail.Columns {
		header[i] = c
	}
	detailRows = append(detailRows, header)
	for _, row := range d.Detail.Rows {
		cells := make([]any, len(row))
		for i, c := range row {
			if c.Valid {
				cells[i] = c.Value
			}
		}
		detailRows = append(detailRows, cells)
	}
	if err := writeSheet(f, detailSheet, detailRows); err != nil {
		return "", err
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("error writing cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// --- PDF ---

// ExportToPDF gera um relatório em A4 paisagem com indicadores, resumo por região e a tabela de entregas.
func (r *ExportRepositoryImpl) ExportToPDF(d *entity.Dashboard, filename, outputDir string) (string, error) {
	if err := checkDashboard(d); err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	headerColor := [3]int{46, 98, 163}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{46, 59, 78}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Entregas Dashboard %s | %s | %s", d.AppVersion, d.GeneratedAt.Format("2006-01-02"), d.RunID)
		pdf.CellFormat(usable/2, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(usable/2, 10, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+usable, pdf.GetY())
		pdf.Ln(3)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Entregas - Indicadores Gerais"), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	// Indicadores
	sectionTitle("Indicadores Gerais")
	kpiWidth := usable / 3
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.SetFont("Arial", "", 9)
	for _, label := range []string{labelDeliveries, labelAmount, labelWeight} {
		pdf.CellFormat(kpiWidth, 6, tr(label), "", 0, "L", false, 0, "")
	}
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 16)
	for _, value := range []string{strconv.Itoa(d.Formatted.Deliveries), d.Formatted.TotalAmount, d.Formatted.TotalWeight} {
		pdf.CellFormat(kpiWidth, 12, tr(value), "", 0, "L", false, 0, "")
	}
	pdf.Ln(16)

	// Resumo por região
	if len(d.Summary) > 0 {
		sectionTitle("Resumo por Região (Valor Atendido)")
		widths := []float64{usable * 0.5, usable * 0.2, usable * 0.3}
		drawTableHeader(pdf, tr, []string{d.RegionColumn, "Entregas", labelTotal}, widths, headerColor, headerTextColor)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, s := range d.Summary {
			pdf.CellFormat(widths[0], 6, tr(s.Region), "B", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 6, strconv.Itoa(s.Deliveries), "B", 0, "R", false, 0, "")
			pdf.CellFormat(widths[2], 6, tr(s.TotalFormatted), "B", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	// Tabela de entregas
	if d.Detail != nil && len(d.Detail.Columns) > 0 {
		sectionTitle("Tabela de Entregas (Filtrada)")
		cols := d.Detail.Columns
		colWidth := usable / float64(len(cols))
		widths := make([]float64, len(cols))
		for i := range widths {
			widths[i] = colWidth
		}
		_, pageHeight := pdf.GetPageSize()

		drawTableHeader(pdf, tr, cols, widths, headerColor, headerTextColor)
		for _, row := range d.Detail.Rows {
			if pdf.GetY() > pageHeight-25 {
				pdf.AddPage()
				drawTableHeader(pdf, tr, cols, widths, headerColor, headerTextColor)
			}
			pdf.SetFont("Arial", "", 6)
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
			for i, cell := range row {
				pdf.CellFormat(widths[i], 5, fitText(pdf, tr(cell.String()), widths[i]), "B", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func drawTableHeader(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, fill, text [3]int) {
	pdf.SetFillColor(fill[0], fill[1], fill[2])
	pdf.SetTextColor(text[0], text[1], text[2])
	pdf.SetFont("Arial", "B", 7)
	for i, c := range cols {
		pdf.CellFormat(widths[i], 6, fitText(pdf, tr(c), widths[i]), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

// fitText corta o texto (já traduzido para cp1252, um byte por caractere) para caber na célula.
func fitText(pdf *gofpdf.Fpdf, text string, width float64) string {
	limit := width - 1
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"..") > limit {
		text = text[:len(text)-1]
	}
	return text + ".."
}

// --- Funções Auxiliares ---

var errNoDashboard = errors.New("nothing to export: dashboard has no delivery table")

func checkDashboard(d *entity.Dashboard) error {
	if d == nil || d.Detail == nil {
		return errNoDashboard
	}
	return nil
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
