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

// SubstanceClass describes what kind of chemical species a substance is.
type SubstanceClass string

const (
	ClassAqueousSolvent SubstanceClass = "aqueous-solvent"
	ClassAqueousSolute  SubstanceClass = "aqueous-solute"
	ClassGasFluid       SubstanceClass = "gas"
	ClassMineral        SubstanceClass = "mineral"
)

// AggregateState is the state of aggregation of a substance at its
// reference conditions.
type AggregateState string

const (
	AggregateSolid  AggregateState = "solid"
	AggregateLiquid AggregateState = "liquid"
	AggregateGas    AggregateState = "gas"
)

// CalculationType selects how the properties of a substance are defined:
// directly by its own models, or algebraically through a reaction.
type CalculationType string

const (
	// CalcDirect evaluates the substance with its own method tags.
	// An empty CalculationType means the same thing.
	CalcDirect CalculationType = "direct"
	// CalcReaction derives the substance's properties from its parent
	// reaction and the properties of the reaction's other reactants.
	CalcReaction CalculationType = "derived-from-reaction"
)

// Substance is one substance record. Records are immutable after load;
// the engine and the models only ever read them.
type Substance struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Formula   string  `json:"formula"`
	Charge    float64 `json:"charge,omitempty"`
	MolarMass float64 `json:"molar_mass,omitempty"` // g/mol

	Class           SubstanceClass  `json:"class"`
	AggregateState  AggregateState  `json:"aggregate_state"`
	CalculationType CalculationType `json:"calculation_type,omitempty"`

	// ReactionSymbol names the parent reaction that defines this
	// substance. It is non-empty only for derived-from-reaction records.
	ReactionSymbol string `json:"reaction,omitempty"`

	// Reference conditions [K, bar] and reference-state properties of
	// the substance at those conditions.
	ReferenceT  float64 `json:"reference_t"`
	ReferenceP  float64 `json:"reference_p"`
	GibbsEnergy float64 `json:"gibbs_energy"`
	Enthalpy    float64 `json:"enthalpy"`
	Entropy     float64 `json:"entropy"`
	Volume      float64 `json:"volume"`

	// CpCoefficients parameterizes the heat-capacity polynomial used by
	// the empirical Cp integration model.
	CpCoefficients []float64 `json:"cp_coefficients,omitempty"`

	// Method tags. Each stage runs at most one model; an empty tag
	// means the stage is not requested for this substance.
	MethodEOS EOSMethod   `json:"eos_method,omitempty"`
	MethodT   TCorrMethod `json:"tcorr_method,omitempty"`
	MethodP   PCorrMethod `json:"pcorr_method,omitempty"`
}
