// File: cmd/root_test.go
package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	assert.Equal(t, "cartwheel", rootCmd.Use)
	assert.Equal(t, Version, rootCmd.Version)

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "run")
}

func TestInitializeConfigWithoutFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// A missing config file is not an error; defaults and env vars apply.
	require.NoError(t, initializeConfig())
	assert.Equal(t, "https://www.saucedemo.com/", viper.GetString("suite.base_url"))
}

func TestEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CARTWHEEL_SUITE_BASE_URL", "http://localhost:9999/")
	require.NoError(t, initializeConfig())
	assert.Equal(t, "http://localhost:9999/", viper.GetString("suite.base_url"))
}
