// Package logger configura el logger estructurado de la aplicación.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida y nivel del logger, tomados de la configuración de la app.
type Config struct {
	Env     string // development escribe consola legible; el resto, JSON
	Level   string // trace|debug|info|warn|error; desconocido o vacío cae en info
	Service string // nombre del servicio, agregado como campo fijo si no es vacío
}

// New construye el logger raíz de la aplicación y redirige el global de
// zerolog para las librerías que lo usan.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()

	log.Logger = zl
	return zl
}
