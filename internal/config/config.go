package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level extrato.yaml configuration. It is loaded
// once at startup and treated as read-only afterwards.
type Config struct {
	Statement  StatementConfig `yaml:"statement"`
	Analytics  AnalyticsConfig `yaml:"analytics"`
	Output     OutputConfig    `yaml:"output"`
	Categories []CategoryRule  `yaml:"categories"`
}

// StatementConfig describes the institution's export shape.
type StatementConfig struct {
	HeaderRow   int      `yaml:"header_row"`  // zero-based offset of the column-name row
	MinColumns  int      `yaml:"min_columns"` // tables narrower than this are rejected
	Columns     []string `yaml:"columns"`     // canonical names assigned to the first MinColumns columns
	DateFormat  string   `yaml:"date_format"` // Go reference layout, e.g. "02/01/06"
	Markers     []string `yaml:"markers"`     // file-name substrings identifying the institution
	IgnoreWords []string `yaml:"ignore_words"`
	Workers     int      `yaml:"workers"`
}

// AnalyticsConfig tunes the derived-analytics stage.
type AnalyticsConfig struct {
	AnomalyThreshold    float64 `yaml:"anomaly_threshold"`
	MovingAverageWindow int     `yaml:"moving_average_window"`
	DefaultCategory     string  `yaml:"default_category"`
}

// OutputConfig controls the CSV flattening convention.
type OutputConfig struct {
	Separator   string `yaml:"separator"`
	DecimalMark string `yaml:"decimal_mark"`
}

// CategoryRule maps a category label to its ordered keyword list. Rule
// order matters: the first rule with any matching keyword wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Load reads an extrato.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads extrato.yaml if present, otherwise returns Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the Bradesco statement profile: header on the seventh
// row, dd/mm/yy dates, six positional columns.
func Default() *Config {
	return &Config{
		Statement: StatementConfig{
			HeaderRow:   6,
			MinColumns:  6,
			Columns:     []string{"Data", "Historico", "Documento", "Credito", "Debito", "Saldo"},
			DateFormat:  "02/01/06",
			Markers:     []string{"Bradesco", "BRADESCO", "Banco Bradesco"},
			IgnoreWords: []string{"Saldo", "Extrato"},
			Workers:     4,
		},
		Analytics: AnalyticsConfig{
			AnomalyThreshold:    2.0,
			MovingAverageWindow: 3,
			DefaultCategory:     "Other",
		},
		Output: OutputConfig{
			Separator:   ";",
			DecimalMark: ",",
		},
		Categories: []CategoryRule{
			{Name: "Donations/Deposits", Keywords: []string{"Dep Din Atm", "Deposito", "Dep Cheque"}},
			{Name: "Organizational Remittances", Keywords: []string{"Torre de Vigia", "Associacao Torre"}},
			{Name: "Maintenance", Keywords: []string{"Pagto Cobranca", "Manutencao", "Condominio", "Luz", "Agua"}},
			{Name: "Earnings", Keywords: []string{"Rendimentos Poup", "Rendimento", "Juros"}},
			{Name: "Transfers", Keywords: []string{"Pix", "Transfe Pix", "Tr.aut.c/c", "Pix Enviado", "Pix Recebido"}},
			{Name: "Special Receipts", Keywords: []string{"Ted", "Receb Pagfor", "Doc"}},
		},
	}
}
