package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, specsmithYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	if specsmithYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "specsmith.yaml"), []byte(specsmithYAML), 0o644))
	}
	if providersYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	}
	return dir
}

const minimalProviders = `
llm_providers:
  default:
    model: test-model
`

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("built-in defaults apply without specsmith.yaml", func(t *testing.T) {
		dir := writeConfigDir(t, "", minimalProviders)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, 0.7, cfg.Quality.MinQuestionScore)
		assert.Equal(t, 2, cfg.Quality.RegenerationCap)
		assert.Equal(t, 7, cfg.Quality.CodeGenMinCategories)
		assert.Equal(t, 20, cfg.NLU.HistorySize)
		assert.NotEmpty(t, cfg.Bias.Keywords)

		provider, err := cfg.DefaultLLMProvider()
		require.NoError(t, err)
		assert.Equal(t, "test-model", provider.Model)
	})

	t.Run("user values override built-ins, untouched fields survive", func(t *testing.T) {
		dir := writeConfigDir(t, `
quality:
  min_question_score: 0.9
nlu:
  history_size: 50
`, minimalProviders)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, 0.9, cfg.Quality.MinQuestionScore)
		assert.Equal(t, 50, cfg.NLU.HistorySize)
		// The rest of the quality block keeps its built-in values.
		assert.Equal(t, 2, cfg.Quality.RegenerationCap)
		assert.Contains(t, cfg.Quality.PhaseThresholds, "analysis")
	})

	t.Run("environment variables expand in provider config", func(t *testing.T) {
		t.Setenv("TEST_LLM_MODEL", "expanded-model")
		dir := writeConfigDir(t, "", `
llm_providers:
  default:
    model: "{{.TEST_LLM_MODEL}}"
`)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		provider, err := cfg.GetLLMProvider("default")
		require.NoError(t, err)
		assert.Equal(t, "expanded-model", provider.Model)
	})

	t.Run("missing llm-providers.yaml fails", func(t *testing.T) {
		dir := writeConfigDir(t, "", "")
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("unknown default provider fails validation", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: missing
`, minimalProviders)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("out-of-range thresholds fail validation", func(t *testing.T) {
		dir := writeConfigDir(t, `
quality:
  min_question_score: 1.5
`, minimalProviders)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		dir := writeConfigDir(t, "quality: [not, a, map", minimalProviders)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})
}

func TestExpandEnv(t *testing.T) {
	t.Run("expands known variables", func(t *testing.T) {
		t.Setenv("EXPAND_ME", "value")
		out := ExpandEnv([]byte("key: {{.EXPAND_ME}}"))
		assert.Equal(t, "key: value", string(out))
	})

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("key: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
		assert.Equal(t, "key: ", string(out))
	})

	t.Run("dollar signs pass through untouched", func(t *testing.T) {
		in := []byte(`pattern: "(?i), right\\?$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})
}
