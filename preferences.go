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

package thermofun

// hydrogenIonName is the canonical name of the proton species. Its
// properties are zero in every reference-state convention.
const hydrogenIonName = "H+"

// ThermoPreferences holds the resolved dispatch flags for one substance:
// which special cases apply and which model each stage should run. It is
// a pure function of the substance record, recomputed on every
// evaluation and never cached.
type ThermoPreferences struct {
	Substance *Substance

	MethodEOS EOSMethod
	MethodT   TCorrMethod
	MethodP   PCorrMethod

	SolventState SolventState

	IsHydrogenIon     bool
	IsWaterVapor      bool
	IsAqueousSolvent  bool
	IsReactionDerived bool
}

// thermoPreferences fetches the substance registered under symbol and
// derives its dispatch flags.
func (e *Engine) thermoPreferences(symbol string) (ThermoPreferences, error) {
	s, err := e.db.Substance(symbol)
	if err != nil {
		return ThermoPreferences{}, err
	}
	pref := ThermoPreferences{
		Substance: s,
		MethodEOS: s.MethodEOS,
		MethodT:   s.MethodT,
		MethodP:   s.MethodP,
	}
	pref.IsHydrogenIon = s.Name == hydrogenIonName
	pref.IsWaterVapor = s.MethodEOS == EOSMethodHKF && s.MethodP == PCorrMethodIdealGas
	pref.IsAqueousSolvent = s.Class == ClassAqueousSolvent
	if s.AggregateState == AggregateGas {
		pref.SolventState = SolventVapor
	} else {
		pref.SolventState = SolventLiquid
	}
	pref.IsReactionDerived = s.CalculationType == CalcReaction
	return pref, nil
}
