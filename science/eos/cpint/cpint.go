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

// Package cpint calculates substance properties by integrating an
// empirical heat-capacity polynomial from the reference temperature, the
// standard treatment for minerals and gases in compiled datasets.
package cpint

import (
	"fmt"
	"math"

	"github.com/thermomod/thermofun"
)

// Method is the tag this model is conventionally registered under.
const Method = thermofun.EOSMethod("cp-integration")

// Model integrates the Haas-Fisher heat-capacity polynomial
//
//	Cp(T) = a0 + a1·T + a2·T⁻² + a3·T⁻¹ᐟ² + a4·T²  [J/(mol·K)]
//
// to extrapolate the record's reference-state properties to T. The
// molar volume is carried unchanged; pressure effects belong to a
// pressure-correction stage.
type Model struct{}

var _ thermofun.SubstanceEOS = Model{}

// ThermoProperties fulfils the thermofun.SubstanceEOS interface.
func (Model) ThermoProperties(_ *thermofun.EvalContext, T, P float64, s *thermofun.Substance) (thermofun.ThermoPropertiesSubstance, error) {
	var tps thermofun.ThermoPropertiesSubstance
	if T <= 0 || s.ReferenceT <= 0 {
		return tps, fmt.Errorf("cpint: non-positive temperature %g K integrating %q from %g K", T, s.Symbol, s.ReferenceT)
	}
	var a [5]float64
	copy(a[:], s.CpCoefficients)
	Tr := s.ReferenceT

	cp := a[0] + a[1]*T + a[2]/(T*T) + a[3]/math.Sqrt(T) + a[4]*T*T
	// ∫Cp dT and ∫Cp/T dT from Tr to T, term by term.
	cpInt := a[0]*(T-Tr) + a[1]/2*(T*T-Tr*Tr) - a[2]*(1/T-1/Tr) +
		2*a[3]*(math.Sqrt(T)-math.Sqrt(Tr)) + a[4]/3*(T*T*T-Tr*Tr*Tr)
	cpTInt := a[0]*math.Log(T/Tr) + a[1]*(T-Tr) - a[2]/2*(1/(T*T)-1/(Tr*Tr)) -
		2*a[3]*(1/math.Sqrt(T)-1/math.Sqrt(Tr)) + a[4]/2*(T*T-Tr*Tr)

	tps.HeatCapacityCp.Val = cp
	// Cp and Cv are not distinguished by this correlation.
	tps.HeatCapacityCv.Val = cp
	tps.Entropy.Val = s.Entropy + cpTInt
	tps.Enthalpy.Val = s.Enthalpy + cpInt
	tps.GibbsEnergy.Val = s.GibbsEnergy - s.Entropy*(T-Tr) + cpInt - T*cpTInt
	tps.Volume.Val = s.Volume
	tps.InternalEnergy.Val = tps.Enthalpy.Val - P*tps.Volume.Val
	tps.HelmholtzEnergy.Val = tps.GibbsEnergy.Val - P*tps.Volume.Val
	return tps, nil
}
