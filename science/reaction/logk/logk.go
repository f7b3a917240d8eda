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

// Package logk calculates reaction properties from fitted
// equilibrium-constant correlations: a seven-term logK(T) polynomial and
// the Marshall-Franck density model, plus the pressure corrections that
// extrapolate both away from the reference pressure.
package logk

import (
	"fmt"
	"math"

	"github.com/thermomod/thermofun"
)

// Tags the models in this package are conventionally registered under.
const (
	MethodPolynomial     = thermofun.TCorrMethod("logk-polynomial")
	MethodMarshallFranck = thermofun.TCorrMethod("marshall-franck")

	MethodVolumePolynomial = thermofun.PCorrMethod("volume-polynomial")
	MethodConstantVolume   = thermofun.PCorrMethod("constant-volume")
)

// lnRT is ln(10)·R, the factor converting a decimal equilibrium
// constant into energy units when multiplied by T [J/(mol·K)].
const lnRT = math.Ln10 * thermofun.RConstant

// Polynomial evaluates the seven-term equilibrium-constant correlation
//
//	logK(T) = A0 + A1·T + A2/T + A3·lnT + A4/T² + A5·T² + A6/√T
//
// and derives the reaction energy, entropy, enthalpy and heat capacity
// analytically from it through ΔG = −ln(10)·R·T·logK.
type Polynomial struct{}

var _ thermofun.ReactionModel = Polynomial{}

// ThermoProperties fulfils the thermofun.ReactionModel interface.
func (Polynomial) ThermoProperties(_ *thermofun.EvalContext, T, P float64, r *thermofun.Reaction) (thermofun.ThermoPropertiesReaction, error) {
	var tpr thermofun.ThermoPropertiesReaction
	if T <= 0 {
		return tpr, fmt.Errorf("logk: non-positive temperature %g K for reaction %q", T, r.Symbol)
	}
	var a [7]float64
	copy(a[:], r.LogKCoefficients)
	sqT := math.Sqrt(T)

	logK := a[0] + a[1]*T + a[2]/T + a[3]*math.Log(T) + a[4]/(T*T) +
		a[5]*T*T + a[6]/sqT
	// First and second temperature derivatives of logK.
	d1 := a[1] - a[2]/(T*T) + a[3]/T - 2*a[4]/(T*T*T) + 2*a[5]*T -
		a[6]/(2*T*sqT)
	d2 := 2*a[2]/(T*T*T) - a[3]/(T*T) + 6*a[4]/(T*T*T*T) + 2*a[5] +
		0.75*a[6]/(T*T*sqT)

	tpr.ReactionGibbsEnergy.Val = -lnRT * T * logK
	tpr.ReactionEntropy.Val = lnRT * (logK + T*d1)
	tpr.ReactionEnthalpy.Val = lnRT * T * T * d1
	tpr.ReactionHeatCapacityCp.Val = lnRT * (2*T*d1 + T*T*d2)
	tpr.ReactionHeatCapacityCv.Val = tpr.ReactionHeatCapacityCp.Val
	tpr.ReactionVolume.Val = r.Volume
	tpr.LogEquilibriumConstant.Val = logK
	tpr.LnEquilibriumConstant.Val = logK * math.Ln10
	return tpr, nil
}

// MarshallFranck evaluates the density-model correlation
//
//	logK(T, ρ) = a0 + a1/T + a2/T² + a3/T³ + (a4 + a5/T + a6/T²)·log10(ρ)
//
// where ρ is the solvent density in g/cm³ at the query conditions,
// obtained through the evaluation context. Only the equilibrium constant
// and the Gibbs energy are defined by the correlation; the remaining
// properties are left zero.
type MarshallFranck struct{}

var _ thermofun.ReactionModel = MarshallFranck{}

// ThermoProperties fulfils the thermofun.ReactionModel interface.
func (MarshallFranck) ThermoProperties(ctx *thermofun.EvalContext, T, P float64, r *thermofun.Reaction) (thermofun.ThermoPropertiesReaction, error) {
	var tpr thermofun.ThermoPropertiesReaction
	if T <= 0 {
		return tpr, fmt.Errorf("logk: non-positive temperature %g K for reaction %q", T, r.Symbol)
	}
	ps, err := ctx.PropertiesSolvent(T, P)
	if err != nil {
		return tpr, fmt.Errorf("logk: solvent density for reaction %q: %w", r.Symbol, err)
	}
	rho := ps.Density / 1000 // kg/m³ to g/cm³
	if rho <= 0 {
		return tpr, fmt.Errorf("logk: non-positive solvent density %g g/cm³ for reaction %q", rho, r.Symbol)
	}
	var a [7]float64
	copy(a[:], r.DensityCoefficients)

	logK := a[0] + a[1]/T + a[2]/(T*T) + a[3]/(T*T*T) +
		(a[4]+a[5]/T+a[6]/(T*T))*math.Log10(rho)

	sta := fmt.Sprintf("calculated with the density model at %g kg/m³", ps.Density)
	tpr.LogEquilibriumConstant = thermofun.Quantity{Val: logK, Sta: sta}
	tpr.LnEquilibriumConstant = thermofun.Quantity{Val: logK * math.Ln10, Sta: sta}
	tpr.ReactionGibbsEnergy = thermofun.Quantity{Val: -lnRT * T * logK, Sta: sta}
	tpr.ReactionVolume.Val = r.Volume
	return tpr, nil
}

// VolumePolynomial extrapolates a reaction away from its reference
// pressure with a temperature-dependent volume change
//
//	ΔV(T) = v0 + v1·(T−Tr) + v2·(T−Tr)²  [J/bar]
//
// adding ΔV·(P−Pr) to the Gibbs energy and enthalpy and recomputing the
// equilibrium constant from the corrected energy.
type VolumePolynomial struct{}

var _ thermofun.ReactionCorrection = VolumePolynomial{}

// Correct fulfils the thermofun.ReactionCorrection interface.
func (VolumePolynomial) Correct(T, P float64, r *thermofun.Reaction, in thermofun.ThermoPropertiesReaction) (thermofun.ThermoPropertiesReaction, error) {
	var v [3]float64
	copy(v[:], r.VolumeCoefficients)
	dT := T - r.ReferenceT
	dV := v[0] + v[1]*dT + v[2]*dT*dT
	return correctVolume(T, P, r, in, dV)
}

// ConstantVolume extrapolates a reaction away from its reference
// pressure with the record's constant volume change.
type ConstantVolume struct{}

var _ thermofun.ReactionCorrection = ConstantVolume{}

// Correct fulfils the thermofun.ReactionCorrection interface.
func (ConstantVolume) Correct(T, P float64, r *thermofun.Reaction, in thermofun.ThermoPropertiesReaction) (thermofun.ThermoPropertiesReaction, error) {
	return correctVolume(T, P, r, in, r.Volume)
}

func correctVolume(T, P float64, r *thermofun.Reaction, in thermofun.ThermoPropertiesReaction, dV float64) (thermofun.ThermoPropertiesReaction, error) {
	if T <= 0 {
		return in, fmt.Errorf("logk: non-positive temperature %g K for reaction %q", T, r.Symbol)
	}
	dGP := dV * (P - r.ReferenceP)
	in.ReactionVolume.Val = dV
	in.ReactionGibbsEnergy.Val += dGP
	in.ReactionEnthalpy.Val += dGP
	in.LnEquilibriumConstant.Val = -in.ReactionGibbsEnergy.Val / (thermofun.RConstant * T)
	in.LogEquilibriumConstant.Val = in.LnEquilibriumConstant.Val / math.Ln10
	return in, nil
}
