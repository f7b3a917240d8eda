/*
Copyright © 2019 the ThermoFun authors.
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

package thermofun

import (
	"encoding/csv"
	"io"
	"strconv"
)

// PropertyWriter writes CSV tables of substance properties evaluated by
// an engine over a temperature and pressure grid.
type PropertyWriter struct {
	Engine *Engine
}

var propertyHeader = []string{
	"symbol", "T(K)", "P(bar)",
	"G(J/mol)", "H(J/mol)", "S(J/(mol*K))", "Cp(J/(mol*K))", "V(J/bar)",
}

// WriteTable evaluates every symbol at every grid point, temperatures
// varying fastest, and writes one CSV row per evaluation. The header is
// written once at the top.
func (w *PropertyWriter) WriteTable(out io.Writer, symbols []string, temperatures, pressures []float64) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(propertyHeader); err != nil {
		return err
	}
	for _, symbol := range symbols {
		for _, p := range pressures {
			for _, t := range temperatures {
				tps, err := w.Engine.ThermoPropertiesSubstance(t, p, symbol)
				if err != nil {
					return err
				}
				row := []string{
					symbol,
					formatFloat(t),
					formatFloat(p),
					formatFloat(tps.GibbsEnergy.Val),
					formatFloat(tps.Enthalpy.Val),
					formatFloat(tps.Entropy.Val),
					formatFloat(tps.HeatCapacityCp.Val),
					formatFloat(tps.Volume.Val),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
