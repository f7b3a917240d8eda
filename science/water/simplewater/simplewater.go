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

// Package simplewater models liquid water near ambient conditions with
// simple empirical correlations: the Kell (1975) density polynomial and
// the Malmberg & Maryott (1956) dielectric constant, both valid between
// the freezing and the boiling point at moderate pressures. It stands in
// for a full water equation of state wherever ambient accuracy is
// enough.
package simplewater

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/thermomod/thermofun"
)

// Tags the models in this package are conventionally registered under.
const (
	Method        = thermofun.TCorrMethod("water-ambient")
	ElectroMethod = thermofun.EOSMethod("water-electro-ambient")
)

const (
	// Validity range of the correlations [K].
	minT = 273.15
	maxT = 373.15

	molarMass = 18.01528 // g/mol

	// Isothermal compressibility and its dielectric analogue near
	// ambient conditions [1/bar].
	beta        = 4.52e-5
	epsilonBeta = 4.71e-5

	// Isobaric heat capacity of liquid water at 25 °C [J/(mol·K)].
	heatCapacity = 75.291

	referenceP = 1.0 // bar
)

func checkState(T float64, state thermofun.SolventState) error {
	if state != thermofun.SolventLiquid {
		return fmt.Errorf("simplewater: only the liquid phase is modeled")
	}
	if T < minT || T > maxT {
		return fmt.Errorf("simplewater: temperature %g K outside the %g-%g K validity range", T, minT, maxT)
	}
	return nil
}

// density evaluates the Kell (1975) polynomial for the density of
// air-free liquid water at atmospheric pressure [kg/m³], then applies a
// constant-compressibility pressure correction.
func density(T, P float64) float64 {
	t := T - 273.15
	rho := (999.83952 + 16.945176*t - 7.9870401e-3*t*t -
		46.170461e-6*t*t*t + 105.56302e-9*t*t*t*t -
		280.54253e-12*t*t*t*t*t) / (1 + 16.879850e-3*t)
	return rho * (1 + beta*(P-referenceP))
}

// epsilon evaluates the Malmberg & Maryott (1956) correlation for the
// static dielectric constant of liquid water, with a small linear
// pressure dependence.
func epsilon(T, P float64) float64 {
	t := T - 273.15
	e := 87.740 - 0.40008*t + 9.398e-4*t*t - 1.410e-6*t*t*t
	return e * (1 + epsilonBeta*(P-referenceP))
}

// Model computes the standard properties and the PVT bundle of liquid
// water from the Kell density polynomial, extrapolating the record's
// reference state with a constant heat capacity.
type Model struct{}

var (
	_ thermofun.SolventThermoModel = Model{}
	_ thermofun.SolventPVTModel    = Model{}
)

// ThermoPropertiesSubstance fulfils the thermofun.SolventThermoModel
// interface.
func (Model) ThermoPropertiesSubstance(T, P float64, s *thermofun.Substance, state thermofun.SolventState) (thermofun.ThermoPropertiesSubstance, error) {
	var tps thermofun.ThermoPropertiesSubstance
	if err := checkState(T, state); err != nil {
		return tps, err
	}
	Tr := s.ReferenceT
	if Tr <= 0 {
		return tps, fmt.Errorf("simplewater: non-positive reference temperature %g K for %q", Tr, s.Symbol)
	}
	m := s.MolarMass
	if m <= 0 {
		m = molarMass
	}
	// Molar volume [J/bar] from the mass density.
	V := 100 * m / density(T, P)
	dGP := V * (P - s.ReferenceP)

	tps.HeatCapacityCp.Val = heatCapacity
	tps.HeatCapacityCv.Val = heatCapacity
	tps.Entropy.Val = s.Entropy + heatCapacity*math.Log(T/Tr)
	tps.Enthalpy.Val = s.Enthalpy + heatCapacity*(T-Tr) + dGP
	tps.GibbsEnergy.Val = s.GibbsEnergy - s.Entropy*(T-Tr) +
		heatCapacity*(T-Tr) - heatCapacity*T*math.Log(T/Tr) + dGP
	tps.Volume.Val = V
	tps.InternalEnergy.Val = tps.Enthalpy.Val - P*V
	tps.HelmholtzEnergy.Val = tps.GibbsEnergy.Val - P*V
	return tps, nil
}

// PropertiesSolvent fulfils the thermofun.SolventPVTModel interface.
func (Model) PropertiesSolvent(T, P float64, s *thermofun.Substance, state thermofun.SolventState) (thermofun.PropertiesSolvent, error) {
	var ps thermofun.PropertiesSolvent
	if err := checkState(T, state); err != nil {
		return ps, err
	}
	rho := density(T, P)
	drhoDT := fd.Derivative(func(t float64) float64 {
		return density(t, P)
	}, T, &fd.Settings{Formula: fd.Central})

	ps.Density = rho
	ps.Alpha = -drhoDT / rho
	ps.Beta = beta
	ps.HeatCapacityCp = heatCapacity
	ps.HeatCapacityCv = heatCapacity
	return ps, nil
}

// Electro computes the dielectric constant of liquid water and the Born
// functions derived from its temperature and pressure derivatives.
type Electro struct{}

var _ thermofun.SolventElectroModel = Electro{}

// ElectroProperties fulfils the thermofun.SolventElectroModel interface.
func (Electro) ElectroProperties(T, P float64, s *thermofun.Substance, ps thermofun.PropertiesSolvent) (thermofun.ElectroPropertiesSolvent, error) {
	var eps thermofun.ElectroPropertiesSolvent
	if err := checkState(T, thermofun.SolventLiquid); err != nil {
		return eps, err
	}
	atT := func(t float64) float64 { return epsilon(t, P) }
	e := epsilon(T, P)
	eT := fd.Derivative(atT, T, &fd.Settings{Formula: fd.Central})
	eTT := fd.Derivative(atT, T, &fd.Settings{Formula: fd.Central2nd})
	eP := fd.Derivative(func(p float64) float64 {
		return epsilon(T, p)
	}, P, &fd.Settings{Formula: fd.Central})

	eps.Epsilon = e
	eps.EpsilonT = eT
	eps.EpsilonP = eP
	eps.BornZ = -1 / e
	eps.BornY = eT / (e * e)
	eps.BornQ = eP / (e * e)
	// X = ∂Y/∂T.
	eps.BornX = eTT/(e*e) - 2*eT*eT/(e*e*e)
	return eps, nil
}
