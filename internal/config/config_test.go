package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown log level", key: "LOG_LEVEL", val: "verbose"},
		{name: "unknown log format", key: "LOG_FORMAT", val: "xml"},
		{name: "non-numeric port", key: "PORT", val: "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	t.Setenv("LOG_FORCE_TEXT", "")

	tests := []struct {
		name       string
		sc         *ServerlessConfig
		format     string
		wantFormat string
	}{
		{name: "nil serverless config", sc: nil, format: "text", wantFormat: "text"},
		{name: "not in lambda", sc: &ServerlessConfig{IsLambda: false}, format: "text", wantFormat: "text"},
		{name: "lambda switches text to json", sc: &ServerlessConfig{IsLambda: true}, format: "text", wantFormat: "json"},
		{name: "lambda keeps json", sc: &ServerlessConfig{IsLambda: true}, format: "json", wantFormat: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: "info", Format: tt.format}}
			got := AdaptConfigForServerless(tt.sc, cfg)
			assert.Equal(t, tt.wantFormat, got.Log.Format)
		})
	}
}

func TestAdaptConfigForServerless_ForceText(t *testing.T) {
	t.Setenv("LOG_FORCE_TEXT", "true")

	cfg := &Config{Log: LogConfig{Level: "info", Format: "text"}}
	got := AdaptConfigForServerless(&ServerlessConfig{IsLambda: true}, cfg)

	assert.Equal(t, "text", got.Log.Format)
}

func TestLoadServerlessConfig(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "health-responder")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("STAGE", "")

	sc := loadServerlessConfig()

	assert.True(t, sc.IsLambda)
	assert.Equal(t, "health-responder", sc.FunctionName)
	assert.Equal(t, "eu-west-1", sc.Region)
	assert.Equal(t, "dev", sc.Stage)

	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	assert.False(t, loadServerlessConfig().IsLambda)
}
