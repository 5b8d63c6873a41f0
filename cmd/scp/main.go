// Command scp prints a service control policy allowing every service
// namespace approved in a CSV export.
//
// The export is read from piped standard input, or else from the location
// named by --src, $SRC or export.csv:
//
//	scp < export.csv > policy.json
//	SRC=s3://bucket/export.csv scp
//	scp --check policy.json   # exit 3 when policy.json is stale
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/viant/afs"
	"github.com/viant/scp"
	"github.com/viant/scp/source"
	"github.com/viant/scp/tracing"
)

const version = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
	exitDrift = 3
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	set             *pflag.FlagSet
	config          string
	src             string
	namespaceColumn string
	statusColumn    string
	check           string
	traceFile       string
	verbose         bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: pflag.NewFlagSet("scp", pflag.ContinueOnError)}
	f.set.SetOutput(stderr)
	f.set.StringVar(&f.config, "config", os.Getenv("SCP_CONFIG"), "YAML configuration location")
	f.set.StringVar(&f.src, "src", "", "export location, - for stdin (default $SRC or "+scp.DefaultSource+")")
	f.set.StringVar(&f.namespaceColumn, "namespace-column", "", "namespace column name")
	f.set.StringVar(&f.statusColumn, "status-column", "", "approval status column name")
	f.set.StringVar(&f.check, "check", "", "compare with an existing policy instead of printing it")
	f.set.StringVar(&f.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")
	f.set.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped rows")
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply overlays explicitly set flags onto config.
func (f *flags) apply(config *scp.Config) {
	overrides := map[string]*string{
		"src":              &config.Source,
		"namespace-column": &config.NamespaceColumn,
		"status-column":    &config.StatusColumn,
		"check":            &config.Check,
		"trace-file":       &config.TraceFile,
	}
	values := map[string]string{
		"src":              f.src,
		"namespace-column": f.namespaceColumn,
		"status-column":    f.statusColumn,
		"check":            f.check,
		"trace-file":       f.traceFile,
	}
	for name, target := range overrides {
		if f.set.Changed(name) {
			*target = values[name]
		}
	}
}

func loadConfig(ctx context.Context, fs afs.Service, f *flags) (*scp.Config, error) {
	config := scp.DefaultConfig()
	if f.config != "" {
		if err := config.LoadYAML(ctx, fs, f.config); err != nil {
			return nil, err
		}
	}
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	f.apply(config)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func selectSource(fs afs.Service, f *flags, config *scp.Config, stdin *os.File) source.Source {
	if f.set.Changed("src") {
		if config.Source == "-" {
			return source.FromReader(source.StdinName, stdin)
		}
		return source.FromURL(fs, config.Source)
	}
	return source.Select(fs, stdin, config.Source)
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(stderr, level)

	fs := afs.New()
	config, err := loadConfig(ctx, fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "scp: %v\n", err)
		return exitUsage
	}
	if config.TraceFile != "" {
		if err = tracing.Init("scp", version, config.TraceFile); err != nil {
			logger.Warn("tracing disabled", "error", err)
		}
		defer func() { _ = tracing.Shutdown(context.Background()) }()
	}

	srv := scp.New(scp.WithConfig(config), scp.WithLogger(logger), scp.WithFs(fs))
	src := selectSource(fs, f, config, stdin)
	logger.Debug("source selected", "source", src.Name())

	data, err := srv.Generate(ctx, src)
	if err != nil {
		fmt.Fprintf(stderr, "scp: %v\n", err)
		return exitError
	}
	if config.Check != "" {
		diff, err := srv.Check(ctx, data, config.Check)
		if err != nil {
			fmt.Fprintf(stderr, "scp: %v\n", err)
			return exitError
		}
		if diff != "" {
			fmt.Fprint(stdout, diff)
			return exitDrift
		}
		return exitOK
	}
	if _, err = stdout.Write(data); err != nil {
		fmt.Fprintf(stderr, "scp: %v\n", err)
		return exitError
	}
	return exitOK
}
