package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, rest, err := GetClientConfig([]string{"posts", "alice"})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"posts", "alice"}, rest)
}

func TestGetClientConfig_EnvBeforeFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_BASE_URL":            "https://env.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
	})

	cfg, rest, err := GetClientConfig([]string{"-base-url", "https://flag.example.com", "-timeout", "5s", "post", "p1"})

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"post", "p1"}, rest)
}

func TestGetClientConfig_FlagsFillUnsetEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, _, err := GetClientConfig([]string{"-base-url", "https://flag.example.com"})

	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.BaseURL)
}

func TestGetClientConfig_InvalidBaseURL(t *testing.T) {
	clearEnvVars(t)

	_, _, err := GetClientConfig([]string{"-base-url", "localhost:8080"})

	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_UnknownFlag(t *testing.T) {
	clearEnvVars(t)

	_, _, err := GetClientConfig([]string{"-grpc-address", "x"})

	assert.Error(t, err)
}
