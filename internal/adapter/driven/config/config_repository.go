package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/entregas-dashboard-go/internal/domain/repository"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

// EnvPrefix é o prefixo das variáveis de ambiente lidas pelo LoadEnv.
const EnvPrefix = "ENTREGAS_"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	envFiles []string
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
// envFiles são os arquivos .env carregados por LoadEnv (padrão: ".env" no diretório atual).
func NewConfigRepository(envFiles ...string) repository.ConfigRepository {
	return &ConfigRepositoryImpl{envFiles: envFiles}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadEnv lê a configuração das variáveis ENTREGAS_*, carregando antes o .env se existir.
// Variáveis já definidas no ambiente têm precedência sobre o .env.
func (r *ConfigRepositoryImpl) LoadEnv() (*types.Config, error) {
	if len(r.envFiles) == 0 {
		_ = godotenv.Load()
	} else {
		for _, f := range r.envFiles {
			if _, err := os.Stat(f); err != nil {
				continue
			}
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("error loading env file %s: %w", f, err)
			}
		}
	}

	return &types.Config{
		Entregas:     getEnv("ENTREGAS", ""),
		Regioes:      getEnv("REGIOES", ""),
		Loads:        getEnvList("LOADS"),
		Regions:      getEnvList("REGIONS"),
		RegionColumn: getEnv("REGION_COLUMN", ""),
		Delimiter:    getEnv("DELIMITER", ""),
		Encoding:     getEnv("ENCODING", ""),
		Sheet:        getEnv("SHEET", ""),
		MaxRows:      getEnvInt("MAX_ROWS", 0),
		ReportName:   getEnv("REPORT_NAME", ""),
		ReportType:   getEnvList("REPORT_TYPE"),
		Dir:          getEnv("DIR", ""),
		AWSProfile:   getEnv("AWS_PROFILE", ""),
		AWSRegion:    getEnv("AWS_REGION", ""),
		Debug:        getEnvBool("DEBUG", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
