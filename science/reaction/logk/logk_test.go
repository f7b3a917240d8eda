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

package logk

import (
	"math"
	"testing"

	"github.com/thermomod/thermofun"
)

func different(a, b, tolerance float64) bool {
	if a == b {
		return false
	}
	return math.Abs(a-b) > tolerance*math.Max(math.Abs(a), math.Abs(b))
}

func dissolution() *thermofun.Reaction {
	return &thermofun.Reaction{
		Symbol:     "QtzDissolution",
		Equation:   "Qtz = SiO2@",
		MethodT:    MethodPolynomial,
		ReferenceT: 298.15,
		ReferenceP: 1,
		LogKCoefficients: []float64{
			0.338166, 0, -840.075, -0.560929, -87301.1, 0, 0,
		},
		VolumeCoefficients: []float64{-2.2, 0.001, 0},
		Volume:             -2.2,
	}
}

func TestPolynomial(t *testing.T) {
	const (
		T = 348.15
		P = 1.0
	)
	r := dissolution()
	tpr, err := Polynomial{}.ThermoProperties(nil, T, P, r)
	if err != nil {
		t.Fatal(err)
	}
	a := r.LogKCoefficients
	wantLogK := a[0] + a[2]/T + a[3]*math.Log(T) + a[4]/(T*T)
	if different(tpr.LogEquilibriumConstant.Val, wantLogK, 1.e-12) {
		t.Errorf("different: %g != %g", tpr.LogEquilibriumConstant.Val, wantLogK)
	}
	if different(tpr.LnEquilibriumConstant.Val, wantLogK*math.Ln10, 1.e-12) {
		t.Errorf("different: %g != %g", tpr.LnEquilibriumConstant.Val, wantLogK*math.Ln10)
	}
	// ΔG = −RT·lnK, and ΔG = ΔH − TΔS.
	wantG := -thermofun.RConstant * T * tpr.LnEquilibriumConstant.Val
	if different(tpr.ReactionGibbsEnergy.Val, wantG, 1.e-12) {
		t.Errorf("different: %g != %g", tpr.ReactionGibbsEnergy.Val, wantG)
	}
	if want := tpr.ReactionEnthalpy.Val - T*tpr.ReactionEntropy.Val; different(tpr.ReactionGibbsEnergy.Val, want, 1.e-10) {
		t.Errorf("different: %g != %g", tpr.ReactionGibbsEnergy.Val, want)
	}
}

// TestPolynomialDerivatives compares the analytic enthalpy and heat
// capacity with finite differences of the correlation itself.
func TestPolynomialDerivatives(t *testing.T) {
	const (
		T  = 400.0
		dT = 1.e-3
	)
	r := dissolution()
	m := Polynomial{}
	lo, err := m.ThermoProperties(nil, T-dT, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := m.ThermoProperties(nil, T+dT, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := m.ThermoProperties(nil, T, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	// Van 't Hoff: dlnK/dT = ΔH/(R·T²).
	dlnKdT := (hi.LnEquilibriumConstant.Val - lo.LnEquilibriumConstant.Val) / (2 * dT)
	wantH := dlnKdT * thermofun.RConstant * T * T
	if different(mid.ReactionEnthalpy.Val, wantH, 1.e-6) {
		t.Errorf("different: %g != %g", mid.ReactionEnthalpy.Val, wantH)
	}
	dHdT := (hi.ReactionEnthalpy.Val - lo.ReactionEnthalpy.Val) / (2 * dT)
	if different(mid.ReactionHeatCapacityCp.Val, dHdT, 1.e-6) {
		t.Errorf("different: %g != %g", mid.ReactionHeatCapacityCp.Val, dHdT)
	}

	if _, err := m.ThermoProperties(nil, -10, 1, r); err == nil {
		t.Error("want error for a non-positive temperature")
	}
}

func TestVolumePolynomial(t *testing.T) {
	const (
		T = 348.15
		P = 500.0
	)
	r := dissolution()
	in, err := Polynomial{}.ThermoProperties(nil, T, P, r)
	if err != nil {
		t.Fatal(err)
	}
	out, err := VolumePolynomial{}.Correct(T, P, r, in)
	if err != nil {
		t.Fatal(err)
	}
	v := r.VolumeCoefficients
	dV := v[0] + v[1]*(T-r.ReferenceT)
	dGP := dV * (P - r.ReferenceP)
	if different(out.ReactionVolume.Val, dV, 1.e-12) {
		t.Errorf("different: %g != %g", out.ReactionVolume.Val, dV)
	}
	if want := in.ReactionGibbsEnergy.Val + dGP; different(out.ReactionGibbsEnergy.Val, want, 1.e-12) {
		t.Errorf("different: %g != %g", out.ReactionGibbsEnergy.Val, want)
	}
	// The equilibrium constant is recomputed from the corrected energy.
	wantLnK := -out.ReactionGibbsEnergy.Val / (thermofun.RConstant * T)
	if different(out.LnEquilibriumConstant.Val, wantLnK, 1.e-12) {
		t.Errorf("different: %g != %g", out.LnEquilibriumConstant.Val, wantLnK)
	}
	if different(out.LogEquilibriumConstant.Val, wantLnK/math.Ln10, 1.e-12) {
		t.Errorf("different: %g != %g", out.LogEquilibriumConstant.Val, wantLnK/math.Ln10)
	}
}

func TestConstantVolumeCorrection(t *testing.T) {
	const (
		T = 298.15
		P = 1000.0
	)
	r := dissolution()
	in, err := Polynomial{}.ThermoProperties(nil, T, P, r)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ConstantVolume{}.Correct(T, P, r, in)
	if err != nil {
		t.Fatal(err)
	}
	dGP := r.Volume * (P - r.ReferenceP)
	if want := in.ReactionGibbsEnergy.Val + dGP; different(out.ReactionGibbsEnergy.Val, want, 1.e-12) {
		t.Errorf("different: %g != %g", out.ReactionGibbsEnergy.Val, want)
	}
	if want := in.ReactionEnthalpy.Val + dGP; different(out.ReactionEnthalpy.Val, want, 1.e-12) {
		t.Errorf("different: %g != %g", out.ReactionEnthalpy.Val, want)
	}
	// At the reference pressure the correction only restates lnK.
	same, err := ConstantVolume{}.Correct(T, r.ReferenceP, r, in)
	if err != nil {
		t.Fatal(err)
	}
	if different(same.ReactionGibbsEnergy.Val, in.ReactionGibbsEnergy.Val, 1.e-12) {
		t.Errorf("different: %g != %g", same.ReactionGibbsEnergy.Val, in.ReactionGibbsEnergy.Val)
	}
}
