package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// --- Console ---

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string { return "" }

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Increment() {}
func (nopHandle) Stop() {}

type fakeConsole struct {
	lines    []string
	infos    []string
	warnings []string
	errors   []string
	success  []string
	tables   []*fakeTable
	metrics  []types.Metric
	bars     []types.RegionBar
}

func (c *fakeConsole) Print(a ...interface{}) { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.lines = append(c.lines, fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{}) { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogDebug(string, ...interface{}) {}
func (c *fakeConsole) Status(string) types.StatusHandle { return nopHandle{} }
func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle { return nopHandle{} }
func (c *fakeConsole) DisplayMetrics(_ string, m []types.Metric) { c.metrics = m }
func (c *fakeConsole) DisplayRegionBars(bars []types.RegionBar) { c.bars = bars }
func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

func contains(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// --- Repositórios ---

type fakeSource struct {
	files map[string]entity.SourceFile
	opts  []types.SourceOptions
}

func (s *fakeSource) Fetch(_ context.Context, location string, opts types.SourceOptions) (entity.SourceFile, error) {
	s.opts = append(s.opts, opts)
	f, ok := s.files[location]
	if !ok {
		return entity.SourceFile{}, fmt.Errorf("file not found: %s", location)
	}
	return f, nil
}

type fakeLoader struct {
	deliveries *entity.Table
	regions    *entity.Table
	warnings   []string
	err        error
	lastOpts   types.LoadOptions
}

func (l *fakeLoader) LoadDeliveries(_ entity.SourceFile, opts types.LoadOptions) (*entity.Table, []string, error) {
	l.lastOpts = opts
	if l.err != nil {
		return nil, nil, l.err
	}
	return l.deliveries, l.warnings, nil
}

func (l *fakeLoader) LoadRegions(_ entity.SourceFile, opts types.LoadOptions) (*entity.Table, []string, error) {
	l.lastOpts = opts
	return l.regions, nil, nil
}

type fakeExport struct {
	calls []string
	last  *entity.Dashboard
}

func (e *fakeExport) ExportToCSV(d *entity.Dashboard, name, dir string) ([]string, error) {
	e.calls, e.last = append(e.calls, "csv"), d
	return []string{dir + "/" + name + "_entregas.csv", dir + "/" + name + "_resumo.csv"}, nil
}

func (e *fakeExport) ExportToJSON(d *entity.Dashboard, name, dir string) (string, error) {
	e.calls, e.last = append(e.calls, "json"), d
	return dir + "/" + name + ".json", nil
}

func (e *fakeExport) ExportToPDF(d *entity.Dashboard, name, dir string) (string, error) {
	e.calls, e.last = append(e.calls, "pdf"), d
	return "", errors.New("disk full")
}

func (e *fakeExport) ExportToXLSX(d *entity.Dashboard, name, dir string) (string, error) {
	e.calls, e.last = append(e.calls, "xlsx"), d
	return dir + "/" + name + ".xlsx", nil
}

type fakeConfig struct {
	file    *types.Config
	env     *types.Config
	fileErr error
}

func (c *fakeConfig) LoadConfigFile(string) (*types.Config, error) {
	if c.fileErr != nil {
		return nil, c.fileErr
	}
	return c.file, nil
}

func (c *fakeConfig) LoadEnv() (*types.Config, error) {
	if c.env == nil {
		return &types.Config{}, nil
	}
	cp := *c.env
	return &cp, nil
}
