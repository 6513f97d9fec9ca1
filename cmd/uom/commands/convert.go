package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/uom-go/internal/application/dto"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Express a value in another unit",
		Long: `Convert a value between two units of the same dimension and kind.

A thermodynamic temperature converts to another temperature scale, but not to
a temperature interval; use "uom eval" to take differences.

Examples:
  uom convert 36.6 thermodynamic_temperature.degree_celsius thermodynamic_temperature.degree_fahrenheit
  uom convert 1 thermal_resistance.kelvin_per_watt thermal_resistance.degree_celsius_per_milliwatt
  uom convert --numeric rational 1 length.inch length.meter`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.svc.Convert(cmd.Context(), dto.ConvertRequest{
				Value: args[0],
				From:  args[1],
				To:    args[2],
			})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n", resp.Value, resp.To)
			})
		},
	}
}

func newEvalCmd(a *app) *cobra.Command {
	var resultUnit string

	cmd := &cobra.Command{
		Use:   "eval <op> <value> <unit> [<value> <unit> | <scalar>]",
		Short: "Add, subtract, multiply, divide or scale quantities",
		Long: `Evaluate one arithmetic operation under the dimension and kind rules.

  add, subtract, multiply, divide take two quantities
  scale takes one quantity and a dimensionless factor

The result is printed in --unit, or as its base-unit value when --unit is empty.

Examples:
  uom eval subtract 30 thermodynamic_temperature.degree_celsius 20 thermodynamic_temperature.degree_celsius --unit temperature_interval.kelvin
  uom eval divide 10 temperature_interval.kelvin 2 power.watt --unit thermal_resistance.kelvin_per_watt
  uom eval scale 3 length.foot 2 --unit length.yard`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.EvaluateRequest{
				Op:   args[0],
				Left: dto.QuantityInput{Value: args[1], Unit: args[2]},
				Unit: resultUnit,
			}
			switch len(args) {
			case 4:
				req.Scalar = args[3]
			case 5:
				req.Right = &dto.QuantityInput{Value: args[3], Unit: args[4]}
			}

			resp, err := a.svc.Evaluate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) {
				unit := resp.Unit
				if unit == "" {
					unit = "(base units, " + resp.Dimension + ")"
				}
				fmt.Fprintf(w, "%s %s [%s]\n", resp.Value, unit, resp.Kind)
			})
		},
	}
	cmd.Flags().StringVarP(&resultUnit, "unit", "u", "", "unit ID to express the result in")
	return cmd
}
