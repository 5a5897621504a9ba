package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.NoError(t, cfg.Validate())
}

func TestLayering(t *testing.T) {
	yml := writeFile(t, "erp.yaml", "addr: \":9000\"\ncompany_name: 테스트\nlog:\n  level: debug\n")
	env := writeFile(t, ".env", "ERP_ADMIN_USER=root\nERP_LOG_DEV=true\n")
	t.Setenv("ERP_ADDR", ":9100")
	t.Setenv("ERP_ADMIN_USER", "")
	os.Unsetenv("ERP_ADMIN_USER")
	t.Setenv("ERP_LOG_DEV", "")
	os.Unsetenv("ERP_LOG_DEV")

	cfg, err := Load(yml, env)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Addr, "env beats the yaml file")
	assert.Equal(t, "테스트", cfg.CompanyName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "root", cfg.Admin.Username, ".env fills unset variables")
	assert.True(t, cfg.Log.Dev)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "addr: [\n")
	_, err = Load(bad, filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("ERP_LOG_DEV", "maybe")
	_, err = Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad addr", func(c *Config) { c.Addr = "8080" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"no admin", func(c *Config) { c.Admin.Username = " " }},
		{"no password", func(c *Config) { c.Admin.Password = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
