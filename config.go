package scp

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/scp/source"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultSource          = "export.csv"
	DefaultNamespaceColumn = "Service Namespace"
	DefaultStatusColumn    = "Approval Status"
)

// Config is a serialisable representation of the generator settings. It can
// be populated from YAML and environment variables; fields left unset keep
// their previous value.
type Config struct {
	// Source is the export location used when stdin is not piped.
	Source          string `json:"source,omitempty" yaml:"source,omitempty" env:"SRC"`
	NamespaceColumn string `json:"namespaceColumn,omitempty" yaml:"namespaceColumn,omitempty" env:"SCP_NAMESPACE_COLUMN"`
	StatusColumn    string `json:"statusColumn,omitempty" yaml:"statusColumn,omitempty" env:"SCP_STATUS_COLUMN"`
	// Check is the location of a previously generated policy to compare with.
	Check     string `json:"check,omitempty" yaml:"check,omitempty" env:"SCP_CHECK"`
	TraceFile string `json:"traceFile,omitempty" yaml:"traceFile,omitempty" env:"SCP_TRACE_FILE"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Source:          DefaultSource,
		NamespaceColumn: DefaultNamespaceColumn,
		StatusColumn:    DefaultStatusColumn,
	}
}

// LoadYAML overlays the YAML document stored at URL onto c.
func (c *Config) LoadYAML(ctx context.Context, fs afs.Service, URL string) error {
	data, err := source.FromURL(fs, URL).Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	return nil
}

// LoadEnv overlays environment variables onto c.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.NamespaceColumn == "" {
		return fmt.Errorf("namespaceColumn must not be empty")
	}
	if c.StatusColumn == "" {
		return fmt.Errorf("statusColumn must not be empty")
	}
	if c.NamespaceColumn == c.StatusColumn {
		return fmt.Errorf("namespaceColumn and statusColumn must differ: %q", c.StatusColumn)
	}
	return nil
}
