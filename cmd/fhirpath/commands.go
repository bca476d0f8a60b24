package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yeyanbo/fhirpath-go/fhirpath"
	"github.com/yeyanbo/fhirpath-go/internal/config"
	"github.com/yeyanbo/fhirpath-go/jsonresource"
)

var errAssertionFailed = errors.New("assertion failed")

type app struct {
	configFile string
	resource   string

	cfg    *config.Config
	logger zerolog.Logger
	cache  *fhirpath.ExpressionCache
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "fhirpath",
		Short:         "Evaluate FHIRPath expressions against FHIR resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (YAML or JSON)")
	flags.Uint32("precision", 34, "significant digits of decimal arithmetic")
	flags.Bool("trace", false, "log the output of trace()")
	flags.String("log-level", "info", "log level")
	flags.Int("cache-size", 256, "number of parsed expressions to keep")

	cmd.AddCommand(a.evalCmd())
	cmd.AddCommand(a.assertCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		With().Timestamp().Logger().
		Level(cfg.Level())
	a.cache = fhirpath.NewExpressionCache(cfg.CacheSize)

	a.logger.Debug().
		Uint32("precision", cfg.DecimalPrecision).
		Bool("trace", cfg.Trace).
		Msg("loaded config")
	return nil
}

func (a *app) evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Print the result of each expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.readResource(cmd)
			if err != nil {
				return err
			}

			ctx := a.evaluationContext(cmd)
			for _, src := range args {
				expr, err := a.cache.Compile(src)
				if err != nil {
					return err
				}
				result, err := fhirpath.Evaluate(ctx, root, expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}

			stats := a.cache.Stats()
			a.logger.Debug().
				Int("size", stats.Size).
				Uint64("hits", stats.Hits).
				Uint64("misses", stats.Misses).
				Msg("expression cache")
			return nil
		},
	}
	cmd.Flags().StringVarP(&a.resource, "resource", "r", "", "FHIR JSON resource, stdin if empty or -")
	return cmd
}

func (a *app) assertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assert <expression>",
		Short: "Print whether the expression holds, exit with 1 if not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.readResource(cmd)
			if err != nil {
				return err
			}

			expr, err := a.cache.Compile(args[0])
			if err != nil {
				return err
			}
			ok, err := fhirpath.Assert(a.evaluationContext(cmd), root, expr)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			if !ok {
				return errAssertionFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&a.resource, "resource", "r", "", "FHIR JSON resource, stdin if empty or -")
	return cmd
}

func (a *app) evaluationContext(cmd *cobra.Command) context.Context {
	// trace() logs at debug level, independent of --log-level
	traceLogger := a.logger.Level(zerolog.DebugLevel)
	ctx := a.cfg.EvaluationContext(cmd.Context(), traceLogger)
	return a.logger.WithContext(ctx)
}

func (a *app) readResource(cmd *cobra.Command) (jsonresource.Object, error) {
	var (
		data []byte
		err  error
	)
	if a.resource == "" || a.resource == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(a.resource)
	}
	if err != nil {
		return jsonresource.Object{}, fmt.Errorf("read resource: %w", err)
	}

	res, err := jsonresource.Parse(data)
	if err != nil {
		return jsonresource.Object{}, err
	}
	a.logger.Debug().
		Str("resourceType", res.ResourceType()).
		Int("bytes", len(data)).
		Msg("read resource")
	return res, nil
}
