package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr bool
	}{
		{
			name:  "defaults with required secrets",
			setup: validEnv,
		},
		{
			name: "missing jwt secret",
			setup: func(t *testing.T) {
				validEnv(t)
				t.Setenv("JWT_SECRET", "")
			},
			wantErr: true,
		},
		{
			name: "refresh ttl shorter than access ttl",
			setup: func(t *testing.T) {
				validEnv(t)
				t.Setenv("JWT_ACCESS_TTL", "1h")
				t.Setenv("JWT_REFRESH_TTL", "30m")
			},
			wantErr: true,
		},
		{
			name: "unknown env",
			setup: func(t *testing.T) {
				validEnv(t)
				t.Setenv("ENV", "dev")
			},
			wantErr: true,
		},
		{
			name: "bad kafka broker",
			setup: func(t *testing.T) {
				validEnv(t)
				t.Setenv("KAFKA_BROKERS", "not a broker")
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup(t)
			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BAD_INT", "forty two")
	t.Setenv("SOME_DURATION", "3s")

	assert.Equal(t, 42, envInt("SOME_INT", 1))
	assert.Equal(t, 1, envInt("SOME_BAD_INT", 1))
	assert.Equal(t, 3*time.Second, envDuration("SOME_DURATION", time.Second))
	assert.Equal(t, "fallback", env("SOME_MISSING_KEY", "fallback"))

	cfg := New()
	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}
