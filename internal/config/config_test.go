package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Unmarshal(v)
	require.NoError(t, err)

	assert.Equal(t, "OLPrint", cfg.Brand)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gemini", cfg.LLM.Generator.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Generator.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.LLM.Generator.APIKeyEnv)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Report.OutputDir)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
brand: GrafiPrint
server:
  addr: 127.0.0.1:9090
llm:
  requests_per_minute: 30
  generator:
    provider: mock
    model: copy-v1
report:
  output_dir: /tmp/reports
log:
  level: debug
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "GrafiPrint", cfg.Brand)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "mock", cfg.LLM.Generator.Provider)
	assert.Equal(t, "copy-v1", cfg.LLM.Generator.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.LLM.Generator.APIKeyEnv)
	assert.Equal(t, 30, cfg.LLM.RequestsPerMinute)
	assert.Equal(t, "/tmp/reports", cfg.Report.OutputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("OLPRINT_BRAND", "EnvPrint")
	t.Setenv("OLPRINT_LLM_GENERATOR_PROVIDER", "openai")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: FilePrint\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EnvPrint", cfg.Brand)
	assert.Equal(t, "openai", cfg.LLM.Generator.Provider)
}

func TestUnmarshalRejectsBadValues(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("brand", " ")
	_, err := Unmarshal(v)
	assert.Error(t, err)

	v = viper.New()
	SetDefaults(v)
	v.Set("llm.requests_per_minute", -1)
	_, err = Unmarshal(v)
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
