package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Entregas     string
	Regioes      string
	Loads        []string
	Regions      []string
	RegionColumn string
	Delimiter    string
	Encoding     string
	Sheet        string
	MaxRows      int
	ReportName   string
	ReportType   []string
	Dir          string
	AWSProfile   string
	AWSRegion    string
	ListFilters  bool
	NoBanner     bool
	Debug        bool
}

// LoadOptions controla a leitura dos arquivos de entrada.
type LoadOptions struct {
	Delimiter rune
	Encoding  string
	Sheet     string
}

// SourceOptions carrega as credenciais usadas para locais s3://.
type SourceOptions struct {
	AWSProfile string
	AWSRegion  string
}
