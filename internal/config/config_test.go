package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prescription-reader/internal/domain/prescriptions"
)

func TestLoad_Defaults(t *testing.T) {
	// vacías = no seteadas (viper ignora env vars vacías)
	for _, k := range []string{"PORT", "AUTH_JWT_SECRET", "CORS_ORIGINS", "MAX_INPUT_BYTES", "READ_TIMEOUT", "WRITE_TIMEOUT"} {
		t.Setenv(k, "")
	}
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, int64(1<<20), cfg.MaxInputBytes)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", Env: "development", MaxInputBytes: 10}
	require.NoError(t, base.Validate())

	c := base
	c.MaxInputBytes = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)

	c = base
	c.AuthJWTSecret = "short"
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)

	c = base
	c.Port = ""
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}

func TestLoadRules_DefaultWithoutFile(t *testing.T) {
	cfg := &Config{}
	rules, err := cfg.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, prescriptions.DefaultRules().MetadataKeywords, rules.MetadataKeywords)
}

func TestLoadRules_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte(`
metadata_keywords: [clinic]
stop_words: [tablet]
drug_suffixes: [vir]
max_fallback_names: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg := &Config{RulesFile: path}
	rules, err := cfg.LoadRules()
	require.NoError(t, err)

	assert.Contains(t, rules.MetadataKeywords, "clinic")
	assert.Contains(t, rules.MetadataKeywords, "rx")
	assert.Contains(t, rules.StopWords, "tablet")
	assert.Contains(t, rules.DrugSuffixes, "vir")
	assert.Equal(t, 3, rules.MaxFallbackNames)

	got := prescriptions.NewParser(rules).Parse("patient was given acyclovir and later valacyclovir by the clinic")
	require.Len(t, got.Medications, 2)
	assert.Equal(t, "acyclovir", got.Medications[0].Name)
}

func TestLoadRules_MissingFile(t *testing.T) {
	cfg := &Config{RulesFile: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := cfg.LoadRules()
	assert.Error(t, err)
}
