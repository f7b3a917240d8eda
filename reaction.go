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

// Reactant is one participant of a reaction. Coefficients are signed:
// negative for species consumed, positive for species produced.
type Reactant struct {
	Symbol      string  `json:"symbol"`
	Coefficient float64 `json:"coefficient"`
}

// Reaction is one reaction record. Records are immutable after load.
// Reactants keep the order of the source record so that aggregations and
// provenance messages are deterministic.
type Reaction struct {
	Symbol   string `json:"symbol"`
	Equation string `json:"equation,omitempty"`

	MethodT TCorrMethod `json:"tcorr_method,omitempty"`
	MethodP PCorrMethod `json:"pcorr_method,omitempty"`

	ReferenceT float64 `json:"reference_t"`
	ReferenceP float64 `json:"reference_p"`

	Reactants []Reactant `json:"reactants"`

	// LogKCoefficients parameterizes the logK(T) polynomial model,
	// DensityCoefficients the Marshall-Franck density model, and
	// VolumeCoefficients the volume-vs-temperature pressure correction.
	LogKCoefficients    []float64 `json:"logk_coefficients,omitempty"`
	DensityCoefficients []float64 `json:"density_coefficients,omitempty"`
	VolumeCoefficients  []float64 `json:"volume_coefficients,omitempty"`

	// Volume is the reference reaction volume change [J/bar] used by
	// the constant-volume pressure correction.
	Volume float64 `json:"volume,omitempty"`
}

// Coefficient returns the stoichiometric coefficient of symbol in r, and
// whether symbol participates in r at all.
func (r *Reaction) Coefficient(symbol string) (float64, bool) {
	for _, rt := range r.Reactants {
		if rt.Symbol == symbol {
			return rt.Coefficient, true
		}
	}
	return 0, false
}
