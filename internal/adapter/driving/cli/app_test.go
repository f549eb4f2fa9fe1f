package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	app := NewCLIApp("1.2.3")
	err := app.rootCmd.ParseFlags([]string{
		"-e", "entregas.csv",
		"--regioes", "s3://logistica/regioes.xlsx",
		"--load", "10,20",
		"-g", "Nordeste",
		"--max-rows", "-1",
		"--delimiter", ";",
		"-y", "csv,pdf",
		"--list-filters",
		"--no-banner",
	})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	args := app.parseArgs()
	if args.Entregas != "entregas.csv" || args.Regioes != "s3://logistica/regioes.xlsx" {
		t.Errorf("inputs = %q, %q", args.Entregas, args.Regioes)
	}
	if !reflect.DeepEqual(args.Loads, []string{"10", "20"}) || !reflect.DeepEqual(args.Regions, []string{"Nordeste"}) {
		t.Errorf("filters = %v, %v", args.Loads, args.Regions)
	}
	if args.MaxRows != -1 || args.Delimiter != ";" || !args.ListFilters || !args.NoBanner || args.Debug {
		t.Errorf("args = %+v", args)
	}
	if !reflect.DeepEqual(args.ReportType, []string{"csv", "pdf"}) {
		t.Errorf("ReportType = %v", args.ReportType)
	}

	changed := app.rootCmd.Flags().Changed
	if !changed("entregas") || changed("report-name") {
		t.Error("Changed() does not reflect the flags passed on the command line")
	}
}

func TestParseArgsDefaults(t *testing.T) {
	t.Parallel()

	app := NewCLIApp("1.2.3")
	if err := app.rootCmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	args := app.parseArgs()
	if !reflect.DeepEqual(args.ReportType, []string{"csv"}) {
		t.Errorf("default ReportType = %v, want [csv]", args.ReportType)
	}
	if args.MaxRows != 0 || args.ConfigFile != "" || args.ListFilters {
		t.Errorf("unexpected defaults: %+v", args)
	}
}

func TestResolveDir(t *testing.T) {
	t.Parallel()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if got, err := resolveDir(""); err != nil || got != cwd {
		t.Errorf("resolveDir(\"\") = %q, %v; want %q", got, err, cwd)
	}
	if got, err := resolveDir("relatorios"); err != nil || got != filepath.Join(cwd, "relatorios") {
		t.Errorf("resolveDir(relatorios) = %q, %v", got, err)
	}
}
