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

// Units used throughout this package: temperature in K, pressure in bar,
// energies in J/mol, entropies and heat capacities in J/(mol·K), and
// volumes in J/bar (1 J/bar = 10 cm³/mol).

// RConstant is the universal gas constant [J/(mol·K)].
const RConstant = 8.31451

// Quantity is one numeric property value together with an optional
// provenance annotation. Annotations are free text and propagate through
// derived results, e.g. "calculated from the reaction components: ...".
type Quantity struct {
	Val float64 `json:"value"`
	Sta string  `json:"status,omitempty"`
}

// ThermoPropertiesSubstance holds the standard thermodynamic properties
// of one substance at a single temperature and pressure.
type ThermoPropertiesSubstance struct {
	GibbsEnergy     Quantity `json:"gibbs_energy"`
	Enthalpy        Quantity `json:"enthalpy"`
	Entropy         Quantity `json:"entropy"`
	HeatCapacityCp  Quantity `json:"heat_capacity_cp"`
	HeatCapacityCv  Quantity `json:"heat_capacity_cv"`
	Volume          Quantity `json:"volume"`
	HelmholtzEnergy Quantity `json:"helmholtz_energy"`
	InternalEnergy  Quantity `json:"internal_energy"`
}

// subtractScaled subtracts coeff times every property of o from p.
func (p *ThermoPropertiesSubstance) subtractScaled(o ThermoPropertiesSubstance, coeff float64) {
	p.GibbsEnergy.Val -= o.GibbsEnergy.Val * coeff
	p.Enthalpy.Val -= o.Enthalpy.Val * coeff
	p.Entropy.Val -= o.Entropy.Val * coeff
	p.HeatCapacityCp.Val -= o.HeatCapacityCp.Val * coeff
	p.HeatCapacityCv.Val -= o.HeatCapacityCv.Val * coeff
	p.Volume.Val -= o.Volume.Val * coeff
	p.HelmholtzEnergy.Val -= o.HelmholtzEnergy.Val * coeff
	p.InternalEnergy.Val -= o.InternalEnergy.Val * coeff
}

// divide divides every property of p by coeff. The caller must guard
// against a zero coefficient.
func (p *ThermoPropertiesSubstance) divide(coeff float64) {
	p.GibbsEnergy.Val /= coeff
	p.Enthalpy.Val /= coeff
	p.Entropy.Val /= coeff
	p.HeatCapacityCp.Val /= coeff
	p.HeatCapacityCv.Val /= coeff
	p.Volume.Val /= coeff
	p.HelmholtzEnergy.Val /= coeff
	p.InternalEnergy.Val /= coeff
}

// ThermoPropertiesReaction holds the property changes of a reaction at a
// single temperature and pressure, together with its equilibrium
// constant on natural and decimal logarithmic scales.
type ThermoPropertiesReaction struct {
	ReactionGibbsEnergy     Quantity `json:"reaction_gibbs_energy"`
	ReactionEnthalpy        Quantity `json:"reaction_enthalpy"`
	ReactionEntropy         Quantity `json:"reaction_entropy"`
	ReactionHeatCapacityCp  Quantity `json:"reaction_heat_capacity_cp"`
	ReactionHeatCapacityCv  Quantity `json:"reaction_heat_capacity_cv"`
	ReactionVolume          Quantity `json:"reaction_volume"`
	ReactionHelmholtzEnergy Quantity `json:"reaction_helmholtz_energy"`
	ReactionInternalEnergy  Quantity `json:"reaction_internal_energy"`
	LnEquilibriumConstant   Quantity `json:"ln_equilibrium_constant"`
	LogEquilibriumConstant  Quantity `json:"log_equilibrium_constant"`
}

// PropertiesSolvent holds the PVT properties of the solvent. Density is
// in kg/m³, Alpha is the thermal expansivity [1/K], Beta the isothermal
// compressibility [1/bar], and the heat capacities are in J/(mol·K).
type PropertiesSolvent struct {
	Density        float64 `json:"density"`
	Alpha          float64 `json:"alpha"`
	Beta           float64 `json:"beta"`
	HeatCapacityCp float64 `json:"heat_capacity_cp"`
	HeatCapacityCv float64 `json:"heat_capacity_cv"`
}

// ElectroPropertiesSolvent holds the dielectric constant of the solvent,
// its temperature and pressure derivatives, and the Born functions
// derived from them.
type ElectroPropertiesSolvent struct {
	Epsilon  float64 `json:"epsilon"`
	EpsilonT float64 `json:"epsilon_t"`
	EpsilonP float64 `json:"epsilon_p"`
	BornZ    float64 `json:"born_z"`
	BornY    float64 `json:"born_y"`
	BornQ    float64 `json:"born_q"`
	BornX    float64 `json:"born_x"`
}
