package scp

import (
	"log/slog"

	"github.com/viant/afs"
)

// Option represents a service option
type Option func(s *Service)

// WithConfig sets the configuration; nil keeps the defaults.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFs sets the storage service used to read sources and policies
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}
