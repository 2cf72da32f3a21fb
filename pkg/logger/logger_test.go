package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNewNivelConMayusculas(t *testing.T) {
	l := New(Config{Env: "production", Level: " ERROR "})
	assert.Equal(t, zerolog.ErrorLevel, l.GetLevel())
}

func TestNewNivelDesconocidoUsaInfo(t *testing.T) {
	l := New(Config{Env: "production", Level: "ruidoso"})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewNivelVacioUsaInfo(t *testing.T) {
	l := New(Config{Env: "development"})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
