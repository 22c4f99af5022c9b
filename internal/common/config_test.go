package common

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(nil)

	assert.Equal(t, "file:workshop.db", cfg.Database.URL)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "./invoices", cfg.Invoice.OutputDir)
}

func TestLoadConfigReadsBoundFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db-url", "", "")
	require.NoError(t, fs.Parse([]string{"--db-url", "postgres://flag-host/registry"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("DB_URL", fs.Lookup("db-url")))

	cfg := LoadConfig(v)
	assert.Equal(t, "postgres://flag-host/registry", cfg.Database.URL,
		"a bound flag must override the default")
}

func TestValidateRejectsIncompleteLookup(t *testing.T) {
	cfg := LoadConfig(nil)
	require.Error(t, cfg.Validate(), "lookup base URL and key are mandatory")

	cfg.Lookup.BaseURL = "not a url"
	cfg.Lookup.APIKey = "key"
	require.Error(t, cfg.Validate())

	cfg.Lookup.BaseURL = "https://api.regocheck.example.com"
	assert.NoError(t, cfg.Validate())
}
