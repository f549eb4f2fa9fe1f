package main

import (
	"fmt"
	"os"

	"github.com/diillson/entregas-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/entregas-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/entregas-dashboard-go/internal/adapter/driven/loader"
	"github.com/diillson/entregas-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/entregas-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/entregas-dashboard-go/internal/application/usecase"
	"github.com/diillson/entregas-dashboard-go/pkg/console"
	"github.com/diillson/entregas-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	sourceRepo := source.NewSourceRepository()
	loaderRepo := loader.NewLoaderRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		sourceRepo,
		loaderRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)
	app.SetDebugSetter(consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
