package strategy

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config controls which expansion strategies are registered per language.
//
// TOML layout:
//
//	[languages.go]
//	syntax = true
//
//	[languages.markdown]
//	syntax = false
type Config struct {
	Languages map[string]LanguageConfig `toml:"languages"`
}

// LanguageConfig holds the per-language strategy switches.
type LanguageConfig struct {
	// Syntax enables the syntax-tree expansion strategy.
	Syntax bool `toml:"syntax"`
}

// LoadConfig reads a TOML configuration file. A missing file is not an
// error; it yields an empty configuration.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// Apply registers or removes the syntax strategy per language according to
// the configuration. Languages absent from the configuration are left
// untouched.
func (c Config) Apply(reg *Registry) {
	for lang, lc := range c.Languages {
		if lc.Syntax {
			if !reg.Has(lang, SyntaxStrategyName) {
				reg.Append(lang, Syntax())
			}
		} else {
			reg.Remove(lang, SyntaxStrategyName)
		}
	}
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
