// Command uom converts quantities between catalog units from the shell.
//
// Usage:
//
//	uom convert 36.6 thermodynamic_temperature.degree_celsius thermodynamic_temperature.degree_fahrenheit
//	uom eval divide 10 temperature_interval.kelvin 2 power.watt --unit thermal_resistance.kelvin_per_watt
//	uom units --kind affine
package main

import (
	"fmt"
	"os"

	"github.com/hapkiduki/uom-go/cmd/uom/commands"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	if err := commands.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
