package shared

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver string `yaml:"driver"` // "sqlite" (default)
		DSN    string `yaml:"dsn"`    // "./eolint.db"
	} `yaml:"database"`

	Analysis struct {
		Sources         []string `yaml:"sources"`
		StrictNull      bool     `yaml:"strict_null"`
		StrictContracts *bool    `yaml:"strict_contracts"` // default true
	} `yaml:"analysis"`

	Rules struct {
		SeverityThreshold string   `yaml:"severity_threshold"` // LOW|MEDIUM|HIGH
		Disabled          []string `yaml:"disabled"`
		AllowedNames      []string `yaml:"allowed_names"`
		ExemptTestFiles   *bool    `yaml:"exempt_test_files"` // default true
		Packs             []string `yaml:"packs"`             // custom rule pack files
		Suppress          []struct {
			Path  string   `yaml:"path"`
			Codes []string `yaml:"codes"`
		} `yaml:"suppress"`
	} `yaml:"rules"`

	Reporting struct {
		OutDir     string `yaml:"out_dir"` // "./reports"
		ShowSource bool   `yaml:"show_source"`
	} `yaml:"reporting"`

	Server struct {
		Addr           string `yaml:"addr"`            // ":8477"
		SessionMinutes int    `yaml:"session_minutes"` // 720
	} `yaml:"server"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.Driver = "sqlite"
	c.Database.DSN = "./eolint.db"
	c.Rules.SeverityThreshold = "LOW"
	c.Reporting.OutDir = "./reports"
	c.Server.Addr = ":8477"
	c.Server.SessionMinutes = 720
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("EOLINT_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("EOLINT_SEVERITY"); v != "" {
		c.Rules.SeverityThreshold = strings.ToUpper(v)
	}
	if v := os.Getenv("EOLINT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("EOLINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EOLINT_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	if v := os.Getenv("EOLINT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return c, nil
}

// StrictContracts resolves the tri-state yaml field (default true).
func (c Config) StrictContracts() bool {
	if c.Analysis.StrictContracts == nil {
		return true
	}
	return *c.Analysis.StrictContracts
}

// ExemptTestFiles resolves the tri-state yaml field (default true).
func (c Config) ExemptTestFiles() bool {
	if c.Rules.ExemptTestFiles == nil {
		return true
	}
	return *c.Rules.ExemptTestFiles
}
