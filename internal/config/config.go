// Package config loads prdkanban settings from a config file, the environment
// and a local .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/render"
)

const (
	configName = "prdkanban"
	envPrefix  = "PRDKANBAN"
)

// Config holds resolved settings.
type Config struct {
	// Format is the default rendering printed by generate.
	Format render.Format

	// OutDir, when set, makes generate also write export files there.
	OutDir string

	// Verbose enables debug logging.
	Verbose bool

	// Defaults prefill the input fields.
	Defaults board.Input

	// File is the config file that was read, if any.
	File string
}

// Options controls where Load looks.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string

	// SearchPaths are directories searched for prdkanban.yaml when File is empty.
	// Nil means the working directory and ~/.config/prdkanban.
	SearchPaths []string

	// EnvFile is a dotenv file loaded before reading the environment.
	// Empty means ".env"; a missing file is not an error.
	EnvFile string
}

// Load resolves settings from defaults, the config file and PRDKANBAN_* variables,
// in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault("format", string(render.FormatOutline))
	v.SetDefault("out_dir", "")
	v.SetDefault("verbose", false)
	v.SetDefault("defaults.goal", "")
	v.SetDefault("defaults.constraints", "")
	v.SetDefault("defaults.duration", "")
	v.SetDefault("defaults.team", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		for _, dir := range searchPaths(opts.SearchPaths) {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	format, err := render.ParseFormat(v.GetString("format"))
	if err != nil {
		return nil, fmt.Errorf("config format: %w", err)
	}

	return &Config{
		Format:  format,
		OutDir:  v.GetString("out_dir"),
		Verbose: v.GetBool("verbose"),
		Defaults: board.Input{
			Goal:        v.GetString("defaults.goal"),
			Constraints: v.GetString("defaults.constraints"),
			Duration:    v.GetString("defaults.duration"),
			Team:        v.GetString("defaults.team"),
		},
		File: v.ConfigFileUsed(),
	}, nil
}

func searchPaths(paths []string) []string {
	if paths != nil {
		return paths
	}
	out := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, filepath.Join(home, ".config", configName))
	}
	return out
}
