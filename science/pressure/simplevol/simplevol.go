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

// Package simplevol contains the two simplest substance pressure
// corrections: a molar volume independent of temperature and pressure,
// and the ideal-gas law.
package simplevol

import (
	"fmt"
	"math"

	"github.com/thermomod/thermofun"
)

// MethodConstantVolume is the tag ConstantVolume is conventionally
// registered under. IdealGas is registered under
// thermofun.PCorrMethodIdealGas.
const MethodConstantVolume = thermofun.PCorrMethod("constant-volume")

// ConstantVolume corrects condensed-phase properties for pressure with a
// molar volume assumed independent of T and P.
type ConstantVolume struct{}

var _ thermofun.SubstanceCorrection = ConstantVolume{}

// Correct fulfils the thermofun.SubstanceCorrection interface.
func (ConstantVolume) Correct(_ *thermofun.EvalContext, T, P float64, s *thermofun.Substance, in thermofun.ThermoPropertiesSubstance) (thermofun.ThermoPropertiesSubstance, error) {
	v := s.Volume
	dP := P - s.ReferenceP
	in.Volume.Val = v
	in.GibbsEnergy.Val += v * dP
	in.Enthalpy.Val += v * dP
	in.InternalEnergy.Val = in.Enthalpy.Val - P*v
	in.HelmholtzEnergy.Val = in.GibbsEnergy.Val - P*v
	return in, nil
}

// IdealGas corrects gas-phase properties for pressure with the ideal-gas
// law: V = RT/P, an isothermal Gibbs energy change of RT·ln(P/Pr), and a
// pressure-independent enthalpy.
type IdealGas struct{}

var _ thermofun.SubstanceCorrection = IdealGas{}

// Correct fulfils the thermofun.SubstanceCorrection interface.
func (IdealGas) Correct(_ *thermofun.EvalContext, T, P float64, s *thermofun.Substance, in thermofun.ThermoPropertiesSubstance) (thermofun.ThermoPropertiesSubstance, error) {
	if P <= 0 || s.ReferenceP <= 0 {
		return in, fmt.Errorf("simplevol: non-positive pressure %g bar correcting %q from %g bar", P, s.Symbol, s.ReferenceP)
	}
	dlnP := math.Log(P / s.ReferenceP)
	in.Volume.Val = thermofun.RConstant * T / P
	in.GibbsEnergy.Val += thermofun.RConstant * T * dlnP
	in.Entropy.Val -= thermofun.RConstant * dlnP
	in.HeatCapacityCv.Val = in.HeatCapacityCp.Val - thermofun.RConstant
	in.InternalEnergy.Val = in.Enthalpy.Val - thermofun.RConstant*T
	in.HelmholtzEnergy.Val = in.GibbsEnergy.Val - thermofun.RConstant*T
	return in, nil
}
