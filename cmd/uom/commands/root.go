// Package commands implements the uom command line.
package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/uom-go/internal/application/service"
	"github.com/hapkiduki/uom-go/internal/infrastructure/catalog"
	"github.com/hapkiduki/uom-go/internal/infrastructure/config"
	"github.com/hapkiduki/uom-go/internal/infrastructure/logging"
	"github.com/hapkiduki/uom-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/uom-go/pkg/errors"
	"github.com/hapkiduki/uom-go/pkg/logger"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	numeric    string
	format     string
	verbose    bool

	svc *service.ConversionService
}

// NewRootCmd builds the uom command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "uom",
		Short: "Dimension- and kind-checked unit conversion",
		Long: `uom converts and combines physical quantities named by catalog unit IDs.

Every value carries its dimension (L, M, T, I, Θ, N, J exponents) and its kind.
Affine quantities such as thermodynamic temperatures have an arbitrary zero;
only their differences, which are Ratio temperature intervals, can be scaled
or multiplied.

Values may be decimals ("36.6", "1e-3") or fractions ("5/9").

Examples:
  uom convert 100 thermodynamic_temperature.degree_celsius thermodynamic_temperature.degree_fahrenheit
  uom eval subtract 30 thermodynamic_temperature.degree_celsius 20 thermodynamic_temperature.degree_celsius
  uom units --dimension=-2,-1,3,0,1,0,0`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./config.yaml if present)")
	root.PersistentFlags().StringVar(&a.numeric, "numeric", "", "numeric representation: float64, decimal or rational (overrides config)")
	root.PersistentFlags().StringVarP(&a.format, "output", "o", "text", "output format: text or json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log engine decisions to stderr")

	root.AddCommand(newConvertCmd(a), newEvalCmd(a), newUnitsCmd(a))
	return root
}

// init loads configuration and wires the service.
func (a *app) init() error {
	if a.format != "text" && a.format != "json" {
		return errors.WithHint(errors.Newf("unknown output format %q", a.format), "use text or json")
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	numeric := cfg.Engine.Numeric
	if a.numeric != "" {
		numeric = a.numeric
	}

	log := logger.Nop()
	if a.verbose {
		if log, err = logger.New(logger.Config{Level: "debug", Format: "console", Output: os.Stderr}); err != nil {
			return err
		}
	}

	units, err := catalog.Units()
	if err != nil {
		return err
	}
	repo, err := memory.NewUnitRepository(units)
	if err != nil {
		return err
	}
	a.svc, err = service.NewConversionService(repo, numeric, logging.New(log))
	return err
}

// print writes v as indented JSON, or calls text for the text format.
func (a *app) print(w io.Writer, v any, text func(io.Writer)) error {
	if a.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
