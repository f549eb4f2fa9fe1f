package entity

import "time"

// Filters representa as seleções de filtro. Listas vazias não filtram nada.
type Filters struct {
	Loads   []string `json:"loads"`
	Regions []string `json:"regions"`
}

// KPIs contém os indicadores gerais do painel.
type KPIs struct {
	Deliveries  int     `json:"deliveries"`
	TotalAmount float64 `json:"total_amount"`
	TotalWeight float64 `json:"total_weight"`
}

// FormattedKPIs são os indicadores já formatados para exibição.
type FormattedKPIs struct {
	Deliveries  int    `json:"deliveries"`
	TotalAmount string `json:"total_amount"`
	TotalWeight string `json:"total_weight"`
}

// RegionSummary é o total atendido de uma região.
type RegionSummary struct {
	Region         string  `json:"region"`
	Deliveries     int     `json:"deliveries"`
	TotalAmount    float64 `json:"total_amount"`
	TotalFormatted string  `json:"total_formatted"`
}

// UnmatchedCity é uma cidade de entrega sem município correspondente no arquivo de regiões.
type UnmatchedCity struct {
	City       string `json:"city"`
	Deliveries int    `json:"deliveries"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Diagnostics agrega os avisos de qualidade de dados de uma execução.
type Diagnostics struct {
	UnmatchedCities     []UnmatchedCity `json:"unmatched_cities,omitempty"`
	DuplicateRegionKeys []string        `json:"duplicate_region_keys,omitempty"`
	InvalidAmounts      int             `json:"invalid_amounts"`
	InvalidWeights      int             `json:"invalid_weights"`
	LoadWarnings        []string        `json:"load_warnings,omitempty"`
}

// Dashboard é o resultado completo de uma passada de renderização. Choices vêm da tabela unida
// antes dos filtros.
type Dashboard struct {
	RunID        string          `json:"run_id"`
	GeneratedAt  time.Time       `json:"generated_at"`
	AppVersion   string          `json:"app_version"`
	Filters      Filters         `json:"filters"`
	RegionColumn string          `json:"region_column"`
	KPIs         KPIs            `json:"kpis"`
	Formatted    FormattedKPIs   `json:"formatted"`
	Summary      []RegionSummary `json:"summary"`
	Detail       *Table          `json:"detail"`
	Diagnostics  Diagnostics     `json:"diagnostics"`
	Choices      FilterChoices   `json:"choices"`
}

// FilterChoices são os valores disponíveis para cada filtro.
type FilterChoices struct {
	Loads   []string `json:"loads"`
	Regions []string `json:"regions"`
}
