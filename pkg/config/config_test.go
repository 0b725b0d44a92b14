package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "IDR", cfg.Finance.HomeCurrency)
	assert.Equal(t, 11.0, cfg.Finance.DefaultTaxRate)
	assert.False(t, cfg.Finance.ResetInvoiceMonthly)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "Memory")
	v.Set("FINANCE_HOME_CURRENCY", "usd")
	v.Set("FINANCE_DEFAULT_TAX_RATE", "10.5")
	v.Set("INVOICE_RESET_MONTHLY", "true")
	v.Set("HTTP_PORT", "9090")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "USD", cfg.Finance.HomeCurrency)
	assert.Equal(t, 10.5, cfg.Finance.DefaultTaxRate)
	assert.True(t, cfg.Finance.ResetInvoiceMonthly)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ProductionSinSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err, "production exige JWT_SECRET")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "finanzas", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/finanzas?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
