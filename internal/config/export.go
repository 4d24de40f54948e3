package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ExportConfig holds configuration for the daily transaction export.
type ExportConfig struct {
	Config
	From string
	To   string
}

// LoadExport merges config file, environment variables, and flags into ExportConfig.
func LoadExport(cfgFile string, flags *pflag.FlagSet) (ExportConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ExportConfig{}, err
	}

	v.SetDefault("from", "2022-04-01")
	v.SetDefault("to", "2022-07-01")

	cfg := ExportConfig{
		Config: fromViper(v),
		From:   v.GetString("from"),
		To:     v.GetString("to"),
	}
	if cfg.From == "" || cfg.To == "" {
		return ExportConfig{}, fmt.Errorf("export window requires from and to")
	}
	return cfg, nil
}
