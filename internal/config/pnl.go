package config

import (
	"github.com/spf13/pflag"
)

// PnLConfig holds configuration for the profit-and-loss report.
type PnLConfig struct {
	Config
	// AsOf overrides the current time used to compute periods.
	AsOf string
}

// LoadPnL merges config file, environment variables, and flags into PnLConfig.
func LoadPnL(cfgFile string, flags *pflag.FlagSet) (PnLConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return PnLConfig{}, err
	}

	return PnLConfig{
		Config: fromViper(v),
		AsOf:   v.GetString("as-of"),
	}, nil
}
