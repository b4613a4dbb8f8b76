package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.DatabaseDSN, "despesas.db")
	assert.Equal(t, c.SecretKey, "", "secret key must not have a default")
	assert.Equal(t, c.TokenValidityDuration, 24*time.Hour)
	assert.Equal(t, c.CORSAllowedOrigins, "*")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.DatabaseDSN, "despesas.db")
	assert.Equal(t, c.SecretKey, "")
	assert.Equal(t, c.TokenValidityDuration, 24*time.Hour)
	assert.Equal(t, c.CORSAllowedOrigins, "*")
}
