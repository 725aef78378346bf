package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  []string
		skip  []string
	}{
		{"off", LevelOff, nil, []string{"[DBG]", "[INF]", "[WRN]", "[ERR]"}},
		{"normal", LevelNormal, []string{"[INF] info 1", "[WRN] warn 2", "[ERR] error 3"}, []string{"[DBG]"}},
		{"verbose", LevelVerbose, []string{"[DBG] debug 0", "[INF] info 1", "[WRN] warn 2", "[ERR] error 3"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug %d", 0)
			log.Info("info %d", 1)
			log.Warn("warn %d", 2)
			log.Error("error %d", 3)

			output := buf.String()
			for _, line := range tt.want {
				assert.Contains(t, output, line)
			}
			for _, prefix := range tt.skip {
				assert.NotContains(t, output, prefix)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)

	log.Info("hidden")
	log.SetLevel(LevelNormal)
	log.Info("shown")

	assert.Equal(t, LevelNormal, log.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing")
	assert.Equal(t, LevelOff, log.GetLevel())
}
