/*
Copyright © 2018 the ThermoFun authors.
This file is part of ThermoFun.

ThermoFun is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ThermoFun is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ThermoFun.  If not, see <http://www.gnu.org/licenses/>.
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thermomod/thermofun"
	"github.com/thermomod/thermofun/thermofunutil"
)

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(calcCmd)

	// Create the configuration flags.
	thermofunutil.InitFlags(Root.PersistentFlags(), calcCmd.Flags())
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "thermofun",
	Short: "A standard thermodynamic property calculator.",
	Long: `ThermoFun calculates the standard thermodynamic properties of substances,
reactions and solvents over a temperature and pressure range.
Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'THERMOFUN_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return thermofunutil.SetConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of ThermoFun.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ThermoFun v%s\n", thermofun.Version)
	},
	DisableAutoGenTag: true,
}

// calcCmd is a command that calculates a property table.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a property table.",
	Long: `calc evaluates the configured substance records over the configured
temperature and pressure grid and writes the properties as a CSV table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := thermofunutil.BatchFromCfg(thermofunutil.Cfg)
		if err != nil {
			return err
		}
		runner := &thermofunutil.Runner{Batch: batch}
		return runner.Run()
	},
	DisableAutoGenTag: true,
}
