package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	config "github.com/thirdweb-dev/watcher/configs"
)

func TestNewLogger_Level(t *testing.T) {
	previous := config.Cfg.Log
	t.Cleanup(func() {
		config.Cfg.Log = previous
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "loud", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			config.Cfg.Log.Level = tt.level
			NewLogger("test")
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
