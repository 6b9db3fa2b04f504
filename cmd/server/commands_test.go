package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/postcraft-api/internal/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "flag-test-key")
	t.Setenv("POSTCRAFT_SERVER_PORT", "9000")

	opts := &cliOptions{}
	v := viper.New()
	root := buildRootCommand(opts, v)

	require.NoError(t, root.ParseFlags([]string{"--port", "9100", "--mode", "rephrase", "--env-file", ""}))

	cfg, err := loadConfig(opts, v)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "flag beats environment")
	assert.Equal(t, "rephrase", cfg.LLM.DefaultMode)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "flag-test-key", cfg.LLM.APIKey)
}

func TestRootCommand_EnvironmentWithoutFlags(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "env-test-key")
	t.Setenv("POSTCRAFT_SERVER_PORT", "9000")

	opts := &cliOptions{}
	v := viper.New()
	root := buildRootCommand(opts, v)
	require.NoError(t, root.ParseFlags([]string{"--env-file", ""}))

	cfg, err := loadConfig(opts, v)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "report", cfg.LLM.DefaultMode)
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "generate")
}

func TestGenerateOnce(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.DefaultMode = "rephrase"
	gen := mocks.NewMockGeneratorWithText("A clearer sentence.")
	var out bytes.Buffer

	err := generateOnce(context.Background(), strings.NewReader("a sentence that rambles"), &out,
		cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)), gen)
	require.NoError(t, err)

	assert.Equal(t, "A clearer sentence.", out.String())
	req := gen.LastRequest()
	assert.True(t, req.DisableThinking)
	assert.True(t, strings.HasSuffix(req.Prompt, "Paragraph:\na sentence that rambles"))
}

func TestGenerateOnce_BackendError(t *testing.T) {
	backendErr := errors.New("Error 401, Message: API key not valid")
	var out bytes.Buffer

	err := generateOnce(context.Background(), strings.NewReader("x"), &out,
		testConfig(), slog.New(slog.NewJSONHandler(io.Discard, nil)), mocks.NewMockGeneratorWithError(backendErr))
	require.Error(t, err)
	assert.Equal(t, backendErr.Error(), err.Error())
	assert.Empty(t, out.String())
}
