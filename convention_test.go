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

import "testing"

func conventionTestEngine() *Engine {
	db := NewDatabase()
	db.AddSubstance(&Substance{
		Symbol:         "H2O@",
		Name:           "Water",
		Formula:        "H2O@",
		Class:          ClassAqueousSolvent,
		AggregateState: AggregateLiquid,
		ReferenceT:     298.15,
		ReferenceP:     1,
		MethodT:        testWaterT,
	})
	per := mineral("Per", -569310, -601600, 26.94, 1.125)
	per.Formula = "MgO"
	db.AddSubstance(per)

	lib := NewModelLibrary()
	lib.RegisterSubstanceEOS(testEOS, &echoEOS{})
	var water ThermoPropertiesSubstance
	water.GibbsEnergy.Val = -237183
	water.Enthalpy.Val = -285881
	water.Entropy.Val = 69.923
	lib.RegisterSolventThermo(testWaterT, fixedSolventThermo{tps: water})
	return NewEngine(db, lib)
}

func TestSteamTablesConvention(t *testing.T) {
	e := conventionTestEngine()

	raw, err := e.ThermoPropertiesSubstance(298.15, 1, "H2O@")
	if err != nil {
		t.Fatal(err)
	}
	// The default water-properties convention is the identity.
	if different(raw.GibbsEnergy.Val, -237183, testTolerance) {
		t.Errorf("different: %g != %g", raw.GibbsEnergy.Val, -237183.)
	}

	// Convention names match case-insensitively.
	if err := e.SetConvention(WaterProperties, "Steam-tables"); err != nil {
		t.Fatal(err)
	}
	shifted, err := e.ThermoPropertiesSubstance(298.15, 1, "H2O@")
	if err != nil {
		t.Fatal(err)
	}
	if want := raw.GibbsEnergy.Val - steamTablesGibbs; different(shifted.GibbsEnergy.Val, want, testTolerance) {
		t.Errorf("different: %g != %g", shifted.GibbsEnergy.Val, want)
	}
	if want := raw.Enthalpy.Val - steamTablesEnthalpy; different(shifted.Enthalpy.Val, want, testTolerance) {
		t.Errorf("different: %g != %g", shifted.Enthalpy.Val, want)
	}
	if want := raw.Entropy.Val - steamTablesEntropy; different(shifted.Entropy.Val, want, testTolerance) {
		t.Errorf("different: %g != %g", shifted.Entropy.Val, want)
	}
}

func TestSteamTablesLeavesSolutesAlone(t *testing.T) {
	e := conventionTestEngine()
	raw, err := e.ThermoPropertiesSubstance(298.15, 1, "Per")
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetConvention(WaterProperties, ConventionSteamTables); err != nil {
		t.Fatal(err)
	}
	got, err := e.ThermoPropertiesSubstance(298.15, 1, "Per")
	if err != nil {
		t.Fatal(err)
	}
	if got != raw {
		t.Errorf("water-properties convention shifted a non-solvent substance")
	}
}

func TestBermanBrownConvention(t *testing.T) {
	e := conventionTestEngine()
	raw, err := e.ThermoPropertiesSubstance(298.15, 1, "Per")
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetConvention(ApparentProperties, ConventionBermanBrown); err != nil {
		t.Fatal(err)
	}
	got, err := e.ThermoPropertiesSubstance(298.15, 1, "Per")
	if err != nil {
		t.Fatal(err)
	}
	// MgO: S°(Mg) + S°(O) at the reference temperature.
	entropy := elementEntropies["Mg"] + elementEntropies["O"]
	if want := raw.GibbsEnergy.Val - 298.15*entropy; different(got.GibbsEnergy.Val, want, testTolerance) {
		t.Errorf("different: %g != %g", got.GibbsEnergy.Val, want)
	}
	if want := raw.Enthalpy.Val - 298.15*entropy; different(got.Enthalpy.Val, want, testTolerance) {
		t.Errorf("different: %g != %g", got.Enthalpy.Val, want)
	}
	// Entropy itself is convention-independent.
	if different(got.Entropy.Val, raw.Entropy.Val, testTolerance) {
		t.Errorf("different: %g != %g", got.Entropy.Val, raw.Entropy.Val)
	}
}

func TestSetConventionErrors(t *testing.T) {
	e := conventionTestEngine()
	if err := e.SetConvention(ApparentProperties, "imaginary"); err == nil {
		t.Error("want error for unimplemented convention name")
	}
	if err := e.SetConvention(WaterProperties, ConventionBermanBrown); err == nil {
		t.Error("want error for convention name in the wrong family")
	}
	if err := e.SetConvention(ConventionFamily("phase"), ConventionBermanBrown); err == nil {
		t.Error("want error for unknown convention family")
	}
	// The empty name resets a family to the identity.
	if err := e.SetConvention(ApparentProperties, ""); err != nil {
		t.Error(err)
	}
	if got := e.Convention(ApparentProperties); got != "" {
		t.Errorf("convention %q; want identity", got)
	}
}

func TestThermoPreferences(t *testing.T) {
	db := NewDatabase()
	db.AddSubstance(&Substance{
		Symbol:         "Steam",
		Name:           "Water vapor",
		Class:          ClassGasFluid,
		AggregateState: AggregateGas,
		MethodEOS:      EOSMethodHKF,
		MethodP:        PCorrMethodIdealGas,
	})
	e := NewEngine(db, NewModelLibrary())

	pref, err := e.thermoPreferences("Steam")
	if err != nil {
		t.Fatal(err)
	}
	if !pref.IsWaterVapor {
		t.Error("HKF with ideal-gas pressure behavior must flag water vapor")
	}
	if pref.SolventState != SolventVapor {
		t.Error("gas aggregate state must select the vapor solvent state")
	}
	if pref.IsAqueousSolvent || pref.IsHydrogenIon || pref.IsReactionDerived {
		t.Errorf("unexpected flags: %+v", pref)
	}
}
