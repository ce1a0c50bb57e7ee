package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/lineedit/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTUI        = "LINEEDIT_TUI"
	envWidth      = "LINEEDIT_WIDTH"
	envHeight     = "LINEEDIT_HEIGHT"
	envShowFooter = "LINEEDIT_FOOTER"
	envColor      = "LINEEDIT_COLOR"
	envTrace      = "LINEEDIT_TRACE"
	envLogFile    = "LINEEDIT_LOG_FILE"
)

// LoadArgs parses configuration from CLI arguments, falling back to the
// LINEEDIT_* variables in environ.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lineedit", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	tui := fs.Bool("tui", envOrBool(env, envTUI, false), "use the full-screen interface instead of the line menu")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "full-screen viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "full-screen viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row in the full-screen interface")
	color := fs.Bool("color", envOrBool(env, envColor, true), "colour status tags when stdout is a terminal")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			TUI:        *tui,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Color:      *color,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tui":     strconv.FormatBool(*tui),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"color":   strconv.FormatBool(*color),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects settings that only make sense together.
func Validate(cfg Config) error {
	if !cfg.App.TUI && (cfg.App.Width > 0 || cfg.App.Height > 0) {
		return fmt.Errorf("width and height require -tui")
	}
	return nil
}
