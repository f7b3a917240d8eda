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

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const testDatabaseJSON = `{
	"substances": [
		{
			"symbol": "Qtz",
			"name": "Quartz",
			"formula": "SiO2",
			"class": "mineral",
			"aggregate_state": "solid",
			"reference_t": 298.15,
			"reference_p": 1,
			"gibbs_energy": -856288,
			"enthalpy": -910700,
			"entropy": 41.46,
			"volume": 2.2688,
			"cp_coefficients": [46.94, 0.0343, -1129680, 0, 0],
			"eos_method": "cp-integration",
			"pcorr_method": "constant-volume"
		},
		{
			"symbol": "SiO2@",
			"name": "SiO2 (aq)",
			"formula": "SiO2@",
			"class": "aqueous-solute",
			"aggregate_state": "liquid",
			"calculation_type": "derived-from-reaction",
			"reaction": "QtzDissolution"
		}
	],
	"reactions": [
		{
			"symbol": "QtzDissolution",
			"equation": "Qtz = SiO2@",
			"tcorr_method": "logk-polynomial",
			"reference_t": 298.15,
			"reference_p": 1,
			"reactants": [
				{"symbol": "Qtz", "coefficient": -1},
				{"symbol": "SiO2@", "coefficient": 1}
			],
			"logk_coefficients": [0.338, 0, -840.075, 0, -87301100, 0, 0]
		}
	]
}`

func TestLoadDatabase(t *testing.T) {
	db, err := LoadDatabase(strings.NewReader(testDatabaseJSON))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := db.SubstanceSymbols(), []string{"Qtz", "SiO2@"}; !reflect.DeepEqual(got, want) {
		t.Errorf("substances %v != %v", got, want)
	}
	if got, want := db.ReactionSymbols(), []string{"QtzDissolution"}; !reflect.DeepEqual(got, want) {
		t.Errorf("reactions %v != %v", got, want)
	}

	s, err := db.Substance("Qtz")
	if err != nil {
		t.Fatal(err)
	}
	if s.Class != ClassMineral || s.MethodEOS != EOSMethod("cp-integration") {
		t.Errorf("unexpected record: %+v", s)
	}
	if different(s.CpCoefficients[2], -1129680, testTolerance) {
		t.Errorf("different: %g != %g", s.CpCoefficients[2], -1129680.)
	}

	derived, err := db.Substance("SiO2@")
	if err != nil {
		t.Fatal(err)
	}
	if derived.CalculationType != CalcReaction || derived.ReactionSymbol != "QtzDissolution" {
		t.Errorf("unexpected record: %+v", derived)
	}

	r, err := db.Reaction("QtzDissolution")
	if err != nil {
		t.Fatal(err)
	}
	if coeff, ok := r.Coefficient("Qtz"); !ok || coeff != -1 {
		t.Errorf("coefficient of Qtz: %g, %t", coeff, ok)
	}
	if _, ok := r.Coefficient("H2O@"); ok {
		t.Error("found a coefficient for a non-participant")
	}
}

func TestLoadDatabaseErrors(t *testing.T) {
	if _, err := LoadDatabase(strings.NewReader("not json")); err == nil {
		t.Error("want error for malformed JSON")
	}
	if _, err := LoadDatabase(strings.NewReader(`{"substances": [{"name": "anonymous"}]}`)); err == nil {
		t.Error("want error for a record without a symbol")
	}
	if _, err := LoadDatabase(strings.NewReader(`{"reactions": [{"equation": "A = B"}]}`)); err == nil {
		t.Error("want error for a reaction without a symbol")
	}
}

func TestDatabaseNotFound(t *testing.T) {
	db := NewDatabase()
	_, err := db.Substance("Qtz")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if nf.Entity != "substance" {
		t.Errorf("entity %q; want substance", nf.Entity)
	}
	if _, err := db.Reaction("R"); err == nil {
		t.Error("want error for a missing reaction")
	}
}
