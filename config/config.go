package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"barcodebuilder/fields"
	"barcodebuilder/units"
)

// DefaultPath は設定ファイルの既定の場所です。
const DefaultPath = "./barcode_config.json"

// Config はバーコードのコード表の設定です。
// 容量テーブルは正式な一覧が未確定のため、ファイルで差し替えられるようにしています。
type Config struct {
	BaseYear             int      `json:"baseYear"`
	Capacities           []string `json:"capacities,omitempty"`
	CapacityFilePath     string   `json:"capacityFilePath,omitempty"`
	CapacityFileEncoding string   `json:"capacityFileEncoding,omitempty"`
}

// Default は組み込みの設定を返します。
func Default() Config {
	return Config{
		BaseYear:   fields.DefaultBaseYear,
		Capacities: units.DefaultCapacityLabels(),
	}
}

func (c *Config) applyDefaults() {
	if c.BaseYear == 0 {
		c.BaseYear = fields.DefaultBaseYear
	}
	if len(c.Capacities) == 0 && c.CapacityFilePath == "" {
		c.Capacities = units.DefaultCapacityLabels()
	}
}

// Load は設定ファイルを読み込みます。ファイルが無ければ既定値を返します。
func Load(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(file, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save は設定を整形したJSONで書き出します。
func Save(path string, cfg Config) error {
	cfg.applyDefaults()

	file, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, file, 0644)
}

// Scheme は設定からコード表を組み立てます。容量CSVの指定があればそちらを優先します。
func (c Config) Scheme() (*fields.Scheme, error) {
	c.applyDefaults()

	var table []uint64
	var err error
	if c.CapacityFilePath != "" {
		table, err = units.LoadCapacityFile(c.CapacityFilePath, c.CapacityFileEncoding)
		if err != nil {
			return nil, err
		}
		if len(c.Capacities) > 0 {
			log.Printf("WARN: [Config] capacities is ignored because capacityFilePath is set (%s)", c.CapacityFilePath)
		}
	} else {
		table, err = units.ParseCapacities(c.Capacities)
		if err != nil {
			return nil, fmt.Errorf("config: capacities: %w", err)
		}
	}

	s, err := fields.NewScheme(c.BaseYear, table)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return s, nil
}
