package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Normalize(t *testing.T) {
	t.Run("defaults to badger backend", func(t *testing.T) {
		req := require.New(t)
		cfg := Config{BadgerFilepath: "/tmp/board"}
		req.NoError(cfg.Normalize())
		req.Equal(BackendBadger, cfg.StoreBackend)
		req.NotEmpty(cfg.DefaultAvatarURL)
		req.Equal([]string{"*"}, cfg.CORSOrigins)
	})

	t.Run("badger backend requires a filepath", func(t *testing.T) {
		cfg := Config{StoreBackend: BackendBadger}
		require.Error(t, cfg.Normalize())
	})

	t.Run("file backend requires a data filepath", func(t *testing.T) {
		cfg := Config{StoreBackend: BackendFile}
		require.Error(t, cfg.Normalize())

		cfg.DataFilepath = "/tmp/data.json"
		require.NoError(t, cfg.Normalize())
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		cfg := Config{StoreBackend: "mongo"}
		require.Error(t, cfg.Normalize())
	})
}

func TestGetLoggerFromString(t *testing.T) {
	req := require.New(t)

	req.True(GetLoggerFromString("DEBUG").Enabled(t.Context(), slog.LevelDebug))
	req.False(GetLoggerFromString("ERROR").Enabled(t.Context(), slog.LevelInfo))
	// Unknown level falls back to info.
	req.True(GetLoggerFromString("nonsense").Enabled(t.Context(), slog.LevelInfo))
}
