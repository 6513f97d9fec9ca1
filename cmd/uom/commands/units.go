package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/uom-go/internal/application/dto"
)

func newUnitsCmd(a *app) *cobra.Command {
	var req dto.ListUnitsRequest

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List catalog units",
		Long: `List the units of the catalog, optionally filtered.

Examples:
  uom units --kind affine
  uom units --prefix power.
  uom units --dimension=-2,-1,3,0,1,0,0     # thermal resistance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.svc.ListUnits(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), page, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDIMENSION\tKIND\tSCALE\tOFFSET")
				for _, u := range page.Items {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Dimension, u.Kind, u.Scale, u.Offset)
				}
				tw.Flush()
				fmt.Fprintf(w, "%d of %d units\n", len(page.Items), page.Total)
			})
		},
	}

	cmd.Flags().StringVar(&req.Kind, "kind", "", "ratio or affine")
	cmd.Flags().StringVar(&req.Dimension, "dimension", "", "seven exponents L,M,T,I,Θ,N,J")
	cmd.Flags().StringVar(&req.Prefix, "prefix", "", "ID prefix, e.g. thermal_resistance.")
	cmd.Flags().IntVar(&req.Limit, "limit", 0, "maximum number of units (0 for all)")
	cmd.Flags().IntVar(&req.Offset, "offset", 0, "units to skip")
	return cmd
}
