package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/tpfoyer/foyer-service/reservation/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("RESERVATION_HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(config.WithWriteTimeout(time.Minute))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "postgres", cfg.Database.Host)
	require.Equal(t, "5432", cfg.Database.Port)
	require.Equal(t, "secret", cfg.Database.Password)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
}

func TestLoad_OptionLogLevel(t *testing.T) {
	cfg, err := config.Load(config.WithLogLevel(zapcore.DebugLevel))
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.False(t, cfg.Kafka.Enabled())
}
