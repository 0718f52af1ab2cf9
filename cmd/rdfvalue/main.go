// Command rdfvalue reads N-Quads and prints the JSON-LD representation of the
// subject and object of every statement, one JSON object per line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/piprate/json-gold/ld"
	"github.com/spf13/cobra"

	"sourcery.dny.nu/fromrdf"
	"sourcery.dny.nu/fromrdf/internal/json"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath     string
		logLevel       string
		nativeTypes    bool
		rdfDirection   string
		processingMode string
	)

	cmd := &cobra.Command{
		Use:   "rdfvalue [file.nq ...]",
		Short: "Convert RDF terms in N-Quads to JSON-LD value objects",
		Long: `rdfvalue reads N-Quads from the given files, or stdin when none are
given, and writes one JSON object per statement with the graph, the
predicate, and the subject and object converted to JSON-LD.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("native-types") {
				cfg.NativeTypes = nativeTypes
			}
			if flags.Changed("rdf-direction") {
				cfg.RDFDirection = rdfDirection
			}
			if flags.Changed("processing-mode") {
				cfg.ProcessingMode = processingMode
			}

			opts, err := cfg.Options()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := newLogger(cmd.ErrOrStderr(), logLevel)
			opts = append(opts, fromrdf.WithLogger(logger))

			return run(
				cmd.Context(),
				fromrdf.NewProcessor(opts...),
				args,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&nativeTypes, "native-types", false, "Convert xsd literals to native JSON values")
	cmd.Flags().StringVar(&rdfDirection, "rdf-direction", "", "RDF direction mode (i18n-datatype)")
	cmd.Flags().StringVar(&processingMode, "processing-mode", ModeJSONLD11, "JSON-LD processing mode (json-ld-1.0, json-ld-1.1)")

	return cmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

type line struct {
	Graph     string              `json:"graph,omitempty"`
	Subject   fromrdf.ValueObject `json:"subject"`
	Predicate string              `json:"predicate"`
	Object    fromrdf.ValueObject `json:"object"`
}

func run(
	ctx context.Context,
	proc *fromrdf.Processor,
	files []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	if len(files) == 0 {
		return convert(ctx, proc, "stdin", stdin, stdout)
	}

	for _, name := range files {
		if err := convertFile(ctx, proc, name, stdout); err != nil {
			return err
		}
	}

	return nil
}

func convertFile(
	ctx context.Context,
	proc *fromrdf.Processor,
	name string,
	stdout io.Writer,
) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return convert(ctx, proc, name, f, stdout)
}

func convert(
	ctx context.Context,
	proc *fromrdf.Processor,
	name string,
	r io.Reader,
	stdout io.Writer,
) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	serializer := &ld.NQuadRDFSerializer{}
	dataset, err := serializer.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	statements, err := proc.FromDataset(ctx, dataset)
	if err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	for _, st := range statements {
		if err := enc.Encode(line{
			Graph:     st.Graph,
			Subject:   st.Subject,
			Predicate: st.Predicate,
			Object:    st.Object,
		}); err != nil {
			return err
		}
	}

	return nil
}
