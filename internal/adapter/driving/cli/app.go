package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/entregas-dashboard-go/pkg/version"

	"github.com/diillson/entregas-dashboard-go/internal/application/usecase"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// DebugSetter é implementado por consoles que sabem ligar mensagens de depuração.
type DebugSetter interface {
	SetDebug(enabled bool)
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	debugSetter      DebugSetter
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "entregas-dashboard",
		Short:         "Dashboard de entregas por região",
		Long:          "Cruza o relatório de entregas (sem cabeçalho) com a tabela de regiões pelo município e exibe indicadores, resumo por região e a tabela filtrada.",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Entregas Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("entregas", "e", "", "Delivery report file (.csv, .txt or .xlsx, no header); accepts s3://bucket/key")
	flags.StringP("regioes", "r", "", "Region table file (.csv, .txt or .xlsx, with header); accepts s3://bucket/key")
	flags.StringSliceP("load", "l", nil, "Filter by load number (N_Car), comma-separated")
	flags.StringSliceP("region", "g", nil, "Filter by region, comma-separated")
	flags.String("region-column", "", "Region column of the region table (default \"Região\")")
	flags.String("delimiter", "", "Field delimiter for .csv/.txt files (default \",\"; use \"tab\" for tab-separated)")
	flags.String("encoding", "", "Text encoding for .csv/.txt files: auto, utf-8, windows-1252, latin1 (default auto)")
	flags.String("sheet", "", "Worksheet to read from .xlsx files (default: first sheet)")
	flags.Int("max-rows", 0, "Maximum delivery rows shown in the terminal (default 50, -1 for all)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("aws-profile", "", "AWS profile used for s3:// inputs")
	flags.String("aws-region", "", "AWS region used for s3:// inputs")
	flags.Bool("list-filters", false, "List the available load numbers and regions and exit")
	flags.Bool("no-banner", false, "Do not print the welcome banner")
	flags.Bool("debug", false, "Print debug messages")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() *types.CLIArgs {
	f := app.rootCmd.Flags()
	configFile, _ := f.GetString("config-file")
	entregas, _ := f.GetString("entregas")
	regioes, _ := f.GetString("regioes")
	loads, _ := f.GetStringSlice("load")
	regions, _ := f.GetStringSlice("region")
	regionColumn, _ := f.GetString("region-column")
	delimiter, _ := f.GetString("delimiter")
	encoding, _ := f.GetString("encoding")
	sheet, _ := f.GetString("sheet")
	maxRows, _ := f.GetInt("max-rows")
	reportName, _ := f.GetString("report-name")
	reportType, _ := f.GetStringSlice("report-type")
	dir, _ := f.GetString("dir")
	awsProfile, _ := f.GetString("aws-profile")
	awsRegion, _ := f.GetString("aws-region")
	listFilters, _ := f.GetBool("list-filters")
	noBanner, _ := f.GetBool("no-banner")
	debug, _ := f.GetBool("debug")

	return &types.CLIArgs{
		ConfigFile:   configFile,
		Entregas:     entregas,
		Regioes:      regioes,
		Loads:        loads,
		Regions:      regions,
		RegionColumn: regionColumn,
		Delimiter:    delimiter,
		Encoding:     encoding,
		Sheet:        sheet,
		MaxRows:      maxRows,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		AWSProfile:   awsProfile,
		AWSRegion:    awsRegion,
		ListFilters:  listFilters,
		NoBanner:     noBanner,
		Debug:        debug,
	}
}

// resolveDir define o diretório de saída como absoluto (padrão: diretório atual).
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs := app.parseArgs()

	if !cliArgs.NoBanner {
		// Exibe o banner de boas-vindas
		displayWelcomeBanner()

		// Verifica a versão mais recente disponível
		go version.CheckLatestVersion(app.version)
	}

	// Mescla arquivo de configuração e variáveis de ambiente; flags explícitas vencem
	if err := app.dashboardUseCase.ResolveArgs(cliArgs, cmd.Flags().Changed); err != nil {
		return err
	}

	if app.debugSetter != nil {
		app.debugSetter.SetDebug(cliArgs.Debug)
	}

	dir, err := resolveDir(cliArgs.Dir)
	if err != nil {
		return err
	}
	cliArgs.Dir = dir

	// Executa o dashboard
	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetDebugSetter registra o console que recebe a flag --debug.
func (app *CLIApp) SetDebugSetter(setter DebugSetter) {
	app.debugSetter = setter
}
