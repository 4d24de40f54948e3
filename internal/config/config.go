package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds settings shared by every report command.
type Config struct {
	PGDSN      string
	ReportsDir string
	Treasury   []string
	Timezone   string
	LogLevel   string
	S3         S3Config
}

// S3Config configures the optional report upload. Empty Endpoint disables it.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an upload endpoint is configured.
func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

// Location resolves Timezone, defaulting to UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("ACCOUNTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("reports-dir", "./reports")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("log-level", "info")
	v.SetDefault("s3-bucket", "treasury-reports")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		PGDSN:      v.GetString("pg-dsn"),
		ReportsDir: v.GetString("reports-dir"),
		Treasury:   addressList(v, "treasury"),
		Timezone:   v.GetString("timezone"),
		LogLevel:   v.GetString("log-level"),
		S3: S3Config{
			Endpoint:  v.GetString("s3-endpoint"),
			AccessKey: v.GetString("s3-access-key"),
			SecretKey: v.GetString("s3-secret-key"),
			Bucket:    v.GetString("s3-bucket"),
			UseSSL:    v.GetBool("s3-use-ssl"),
		},
	}
}

// addressList reads a list key that may arrive as a YAML list, repeated
// flags or a comma separated env value.
func addressList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
