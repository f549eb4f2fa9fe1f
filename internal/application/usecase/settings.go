package usecase

import (
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// ResolveArgs completa os argumentos da linha de comando com o arquivo de configuração e as
// variáveis ENTREGAS_*. Precedência: flag explícita > arquivo de configuração > ambiente > padrão.
// explicit informa se a flag com o nome dado foi passada pelo usuário.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs, explicit func(flag string) bool) error {
	merged, err := uc.configRepo.LoadEnv()
	if err != nil {
		return err
	}
	if merged == nil {
		merged = &types.Config{}
	}

	if args.ConfigFile != "" {
		fileCfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			uc.console.LogError("Error loading configuration file: %s", err)
			return err
		}
		overlayConfig(merged, fileCfg)
		uc.console.LogDebug("Configuration loaded from %s", args.ConfigFile)
	}

	applyConfig(args, merged, explicit)
	return nil
}

// overlayConfig copia para dst os campos preenchidos em src.
func overlayConfig(dst, src *types.Config) {
	if src == nil {
		return
	}
	setString(&dst.Entregas, src.Entregas)
	setString(&dst.Regioes, src.Regioes)
	setSlice(&dst.Loads, src.Loads)
	setSlice(&dst.Regions, src.Regions)
	setString(&dst.RegionColumn, src.RegionColumn)
	setString(&dst.Delimiter, src.Delimiter)
	setString(&dst.Encoding, src.Encoding)
	setString(&dst.Sheet, src.Sheet)
	if src.MaxRows != 0 {
		dst.MaxRows = src.MaxRows
	}
	setString(&dst.ReportName, src.ReportName)
	setSlice(&dst.ReportType, src.ReportType)
	setString(&dst.Dir, src.Dir)
	setString(&dst.AWSProfile, src.AWSProfile)
	setString(&dst.AWSRegion, src.AWSRegion)
	if src.Debug {
		dst.Debug = true
	}
}

// applyConfig preenche os argumentos cujas flags não foram passadas explicitamente.
func applyConfig(args *types.CLIArgs, cfg *types.Config, explicit func(flag string) bool) {
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	apply := func(flag string, fn func()) {
		if !explicit(flag) {
			fn()
		}
	}

	apply("entregas", func() { setString(&args.Entregas, cfg.Entregas) })
	apply("regioes", func() { setString(&args.Regioes, cfg.Regioes) })
	apply("load", func() { setSlice(&args.Loads, cfg.Loads) })
	apply("region", func() { setSlice(&args.Regions, cfg.Regions) })
	apply("region-column", func() { setString(&args.RegionColumn, cfg.RegionColumn) })
	apply("delimiter", func() { setString(&args.Delimiter, cfg.Delimiter) })
	apply("encoding", func() { setString(&args.Encoding, cfg.Encoding) })
	apply("sheet", func() { setString(&args.Sheet, cfg.Sheet) })
	apply("max-rows", func() {
		if cfg.MaxRows != 0 {
			args.MaxRows = cfg.MaxRows
		}
	})
	apply("report-name", func() { setString(&args.ReportName, cfg.ReportName) })
	apply("report-type", func() { setSlice(&args.ReportType, cfg.ReportType) })
	apply("dir", func() { setString(&args.Dir, cfg.Dir) })
	apply("aws-profile", func() { setString(&args.AWSProfile, cfg.AWSProfile) })
	apply("aws-region", func() { setString(&args.AWSRegion, cfg.AWSRegion) })
	apply("debug", func() {
		if cfg.Debug {
			args.Debug = true
		}
	})
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setSlice(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = append([]string(nil), v...)
	}
}
