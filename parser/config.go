package parser

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config controls how documents are parsed and how much the parser and the
// documents it builds log.
type Config struct {
	// LogLevel is any level logrus.ParseLevel accepts.
	LogLevel string `yaml:"log_level"`
	// ScriptingEnabled changes how <noscript> content is parsed.
	ScriptingEnabled bool `yaml:"scripting_enabled"`
	// Sanitize runs the input through a user generated content policy
	// before parsing. Scripts and event handler attributes are dropped.
	Sanitize bool `yaml:"sanitize"`
	// FragmentContext is the tag of the context element used by
	// ParseFragment when the caller does not pass one.
	FragmentContext string `yaml:"fragment_context"`
	// URL becomes the URL of every parsed document.
	URL string `yaml:"url"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "warning",
		FragmentContext: "body",
		URL:             "about:blank",
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Logger builds the entry documents parsed with this config log through.
func (c *Config) Logger() (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log := logrus.New()
	log.SetLevel(level)
	return logrus.NewEntry(log), nil
}
