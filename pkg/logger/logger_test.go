package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// El nivel explícito manda; vacío o inválido cae al default del entorno.
func TestLevel(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want zerolog.Level
	}{
		{"explícito", Config{Env: "production", Level: "warn"}, zerolog.WarnLevel},
		{"vacío en development", Config{Env: "development"}, zerolog.DebugLevel},
		{"vacío en production", Config{Env: "production"}, zerolog.InfoLevel},
		{"inválido cae al default", Config{Env: "production", Level: "ruido"}, zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, level(tc.cfg))
		})
	}
}

func TestNew_AplicaNivel(t *testing.T) {
	l := New(Config{Env: "production", Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, l.zl.GetLevel())
}
