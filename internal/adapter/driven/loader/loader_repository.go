package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/domain/repository"
	"github.com/diillson/entregas-dashboard-go/internal/domain/service"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// Marcadores tratados como valor ausente, os mesmos que planilhas e exportações de ERP costumam usar.
var naValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var usToBR = strings.NewReplacer(",", ".", ".", ",")

// LoaderRepositoryImpl implementa o LoaderRepository para CSV/TXT e XLSX.
type LoaderRepositoryImpl struct{}

// NewLoaderRepository cria uma nova implementação do LoaderRepository.
func NewLoaderRepository() repository.LoaderRepository {
	return &LoaderRepositoryImpl{}
}

// LoadDeliveries lê o arquivo de entregas (sem cabeçalho) no esquema fixo de 13 colunas e
// substitui a coluna Cidade pela sua forma normalizada.
func (r *LoaderRepositoryImpl) LoadDeliveries(file entity.SourceFile, opts types.LoadOptions) (*entity.Table, []string, error) {
	records, err := readRecords(file, opts)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", file.Name, types.ErrEmptyFile)
	}

	var warnings []string
	table := entity.NewTable(entity.DeliveryColumns)
	width := len(entity.DeliveryColumns)
	for i, rec := range records {
		if len(rec) > width {
			warnings = append(warnings, fmt.Sprintf("%s: row %d has %d fields, expected %d; extra fields ignored", file.Name, i+1, len(rec), width))
		}
		table.AppendRow(toRow(rec, width))
	}

	cityCol := table.ColumnIndex(entity.ColCidade)
	for _, row := range table.Rows {
		row[cityCol] = entity.Text(service.NormalizeCell(row[cityCol]))
	}
	return table, warnings, nil
}

// LoadRegions lê o arquivo de regiões usando a primeira linha como cabeçalho.
func (r *LoaderRepositoryImpl) LoadRegions(file entity.SourceFile, opts types.LoadOptions) (*entity.Table, []string, error) {
	records, err := readRecords(file, opts)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", file.Name, types.ErrEmptyFile)
	}

	var warnings []string
	table := entity.NewTable(headerNames(records[0]))
	width := len(table.Columns)
	for i, rec := range records[1:] {
		if len(rec) > width {
			warnings = append(warnings, fmt.Sprintf("%s: row %d has %d fields, header has %d; extra fields ignored", file.Name, i+2, len(rec), width))
		}
		table.AppendRow(toRow(rec, width))
	}
	return table, warnings, nil
}

// headerNames mantém os nomes do arquivo, preenchendo vazios e desambiguando repetidos ("X", "X.1").
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := map[string]int{}
	for i, h := range raw {
		name := h
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			candidate := fmt.Sprintf("%s.%d", name, n)
			for seen[candidate] > 0 {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
			}
			seen[name] = n + 1
			name = candidate
		}
		seen[name]++
		names[i] = name
	}
	return names
}

func toRow(rec []string, width int) entity.Row {
	row := make(entity.Row, width)
	for i := 0; i < width && i < len(rec); i++ {
		if _, na := naValues[rec[i]]; na {
			continue
		}
		row[i] = entity.Text(rec[i])
	}
	return row
}

// readRecords escolhe o leitor pela extensão do arquivo.
func readRecords(file entity.SourceFile, opts types.LoadOptions) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(file.Name))
	switch ext {
	case ".csv", ".txt":
		return readDelimited(file.Content, opts)
	case ".xlsx":
		return readXLSX(file.Content, opts.Sheet)
	default:
		return nil, fmt.Errorf("%s: %w", file.Name, types.ErrUnsupportedFormat)
	}
}

func readDelimited(content []byte, opts types.LoadOptions) ([][]string, error) {
	text, err := decodeText(content, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	var out [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading delimited file: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// decodeText converte o conteúdo para UTF-8. Em "auto", conteúdo que não é UTF-8 válido é
// tratado como Windows-1252, o padrão dos arquivos exportados por ERPs no Brasil.
func decodeText(content []byte, encoding string) ([]byte, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "auto":
		if utf8.Valid(content) {
			return content, nil
		}
		return charmap.Windows1252.NewDecoder().Bytes(content)
	case "utf-8", "utf8":
		return content, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Bytes(content)
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Bytes(content)
	default:
		return nil, fmt.Errorf("unsupported text encoding: %s", encoding)
	}
}

func readXLSX(content []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error opening spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, types.ErrEmptyFile
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}

	out := make([][]string, 0, len(rows))
	for r, row := range rows {
		if isBlank(row) {
			continue
		}
		for c, display := range row {
			if r >= len(raw) || c >= len(raw[r]) || !strings.ContainsAny(display, ".,") {
				continue
			}
			if !isNumericCell(f, sheet, c, r, raw[r][c]) {
				continue
			}
			if br, ok := brDisplay(display); ok {
				row[c] = br
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// isNumericCell informa se a célula guarda um número (tipo "n" ou sem tipo) e não texto.
func isNumericCell(f *excelize.File, sheet string, col, row int, raw string) bool {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return false
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false
	}
	return cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset
}

// brDisplay troca os separadores da exibição en-US de um número ("1,234.56") pelos brasileiros
// ("1.234,56"), mantendo um eventual prefixo de moeda. Datas, horas e percentuais ficam como estão.
func brDisplay(display string) (string, bool) {
	body := strings.TrimSpace(display)
	start := strings.IndexFunc(body, func(r rune) bool { return unicode.IsDigit(r) || r == '-' })
	if start < 0 {
		return "", false
	}
	prefix, body := body[:start], body[start:]
	if strings.Trim(body, "-0123456789,.") != "" || strings.Count(body, ".") > 1 || strings.LastIndex(body, "-") > 0 {
		return "", false
	}
	return prefix + usToBR.Replace(body), true
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
