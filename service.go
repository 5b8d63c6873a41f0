package scp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/scp/approval"
	"github.com/viant/scp/export"
	"github.com/viant/scp/internal/idgen"
	"github.com/viant/scp/policy"
	"github.com/viant/scp/source"
	"github.com/viant/scp/tracing"
)

// Service builds policy documents from service approval exports.
type Service struct {
	config *Config
	logger *slog.Logger
	fs     afs.Service
}

// Config returns the service configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Build reads the whole export, collects every namespace with an approved
// status and returns a policy allowing all of their actions. It fails with
// ErrNoApprovedNamespaces when none is found.
func (s *Service) Build(ctx context.Context, src source.Source) (*policy.Document, error) {
	runID := idgen.New()
	ctx, span := tracing.StartSpan(ctx, "scp.build")
	span.WithAttributes(map[string]string{"source": src.Name(), "run.id": runID})
	doc, err := s.build(ctx, src, s.logger.With("run", runID, "source", src.Name()))
	tracing.EndSpan(span, err)
	return doc, err
}

func (s *Service) build(ctx context.Context, src source.Source, logger *slog.Logger) (*policy.Document, error) {
	data, err := s.read(ctx, src)
	if err != nil {
		return nil, err
	}
	namespaces, err := s.approvedNamespaces(ctx, data, logger)
	if err != nil {
		return nil, err
	}
	if len(namespaces) == 0 {
		return nil, fmt.Errorf("%s: %w", src.Name(), ErrNoApprovedNamespaces)
	}
	actions := policy.Actions(namespaces)
	logger.Info("policy built", "actions", len(actions))
	return policy.New(actions), nil
}

func (s *Service) read(ctx context.Context, src source.Source) ([]byte, error) {
	_, span := tracing.StartSpan(ctx, "scp.read")
	data, err := src.Read(ctx)
	tracing.EndSpan(span, err)
	return data, err
}

// approvedNamespaces returns approved namespaces in the order of their first
// appearance.
func (s *Service) approvedNamespaces(ctx context.Context, data []byte, logger *slog.Logger) ([]string, error) {
	_, span := tracing.StartSpan(ctx, "scp.scan")
	namespaces, rows, err := s.scan(data, logger)
	span.WithAttributes(map[string]string{
		"rows":       fmt.Sprint(rows),
		"namespaces": fmt.Sprint(len(namespaces)),
	})
	tracing.EndSpan(span, err)
	if err == nil {
		logger.Info("export scanned", "rows", rows, "approved", len(namespaces))
	}
	return namespaces, err
}

func (s *Service) scan(data []byte, logger *slog.Logger) ([]string, int, error) {
	namespaceColumn, statusColumn := s.config.NamespaceColumn, s.config.StatusColumn
	reader := export.NewReader(bytes.NewReader(data))
	if err := reader.Require(namespaceColumn, statusColumn); err != nil {
		return nil, 0, err
	}
	seen := map[string]struct{}{}
	var namespaces []string
	rows := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rows, err
		}
		rows++
		namespace := row[namespaceColumn]
		if namespace == "" {
			logger.Debug("row skipped", "line", reader.Line(), "reason", "empty namespace")
			continue
		}
		if !approval.IsApproved(row[statusColumn]) {
			continue
		}
		if _, ok := seen[namespace]; ok {
			continue
		}
		seen[namespace] = struct{}{}
		namespaces = append(namespaces, namespace)
	}
	return namespaces, rows, nil
}

// Generate builds the policy and returns its JSON encoding. The same export
// always yields byte-identical output.
func (s *Service) Generate(ctx context.Context, src source.Source) ([]byte, error) {
	doc, err := s.Build(ctx, src)
	if err != nil {
		return nil, err
	}
	return doc.Encode()
}

// Check compares generated with the policy stored at URL and returns a
// unified diff, empty when both match.
func (s *Service) Check(ctx context.Context, generated []byte, URL string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "scp.check")
	existing, err := source.FromURL(s.fs, URL).Read(ctx)
	if err != nil {
		tracing.EndSpan(span, err)
		return "", err
	}
	diff, err := policy.Diff(existing, generated, URL)
	tracing.EndSpan(span, err)
	if err == nil && diff != "" {
		s.logger.Warn("policy drift detected", "policy", URL)
	}
	return diff, err
}

// New creates a service
func New(options ...Option) *Service {
	s := &Service{}
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	return s
}
