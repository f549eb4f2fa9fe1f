package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Entregas     string   `json:"entregas" yaml:"entregas" toml:"entregas"`
	Regioes      string   `json:"regioes" yaml:"regioes" toml:"regioes"`
	Loads        []string `json:"loads" yaml:"loads" toml:"loads"`
	Regions      []string `json:"regions" yaml:"regions" toml:"regions"`
	RegionColumn string   `json:"region_column" yaml:"region_column" toml:"region_column"`
	Delimiter    string   `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	Encoding     string   `json:"encoding" yaml:"encoding" toml:"encoding"`
	Sheet        string   `json:"sheet" yaml:"sheet" toml:"sheet"`
	MaxRows      int      `json:"max_rows" yaml:"max_rows" toml:"max_rows"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	AWSProfile   string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion    string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	Debug        bool     `json:"debug" yaml:"debug" toml:"debug"`
}
