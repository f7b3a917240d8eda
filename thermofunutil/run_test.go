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

package thermofunutil

import (
	"encoding/csv"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

const runTestDatabase = `{
	"substances": [
		{
			"symbol": "H2O@",
			"name": "Water",
			"formula": "H2O@",
			"class": "aqueous-solvent",
			"aggregate_state": "liquid",
			"reference_t": 298.15,
			"reference_p": 1,
			"gibbs_energy": -237183,
			"enthalpy": -285881,
			"entropy": 69.923,
			"tcorr_method": "water-ambient",
			"eos_method": "water-electro-ambient"
		},
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
			"cp_coefficients": [46.94, 0.0343, -1129680],
			"eos_method": "cp-integration",
			"pcorr_method": "constant-volume"
		}
	]
}`

func TestRunnerRun(t *testing.T) {
	dir, err := ioutil.TempDir("", "thermofunutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "db.json")
	if err := ioutil.WriteFile(dbPath, []byte(runTestDatabase), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "props.csv")

	r := &Runner{Batch: &Batch{
		Database:     dbPath,
		Solvent:      "H2O@",
		Symbols:      []string{"Qtz", "H2O@"},
		Temperatures: []float64{298.15, 348.15},
		Pressures:    []float64{1},
		Output:       outPath,
	}}
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header plus 2 symbols × 2 temperatures × 1 pressure.
	if len(rows) != 5 {
		t.Fatalf("got %d rows; want 5", len(rows))
	}
	if rows[1][0] != "Qtz" || rows[1][1] != "298.15" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[1][3] != "-856288" {
		t.Errorf("Gibbs energy column %q; want -856288", rows[1][3])
	}
}

func TestRunnerChecksBatch(t *testing.T) {
	r := &Runner{Batch: &Batch{}}
	if err := r.Run(); err == nil {
		t.Error("want error for an empty batch")
	}
}

func TestRunnerBadConvention(t *testing.T) {
	dir, err := ioutil.TempDir("", "thermofunutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	dbPath := filepath.Join(dir, "db.json")
	if err := ioutil.WriteFile(dbPath, []byte(runTestDatabase), 0644); err != nil {
		t.Fatal(err)
	}
	r := &Runner{Batch: &Batch{
		Database:           dbPath,
		ApparentConvention: "imaginary",
		Symbols:            []string{"Qtz"},
		Temperatures:       []float64{298.15},
		Pressures:          []float64{1},
	}}
	if err := r.Run(); err == nil {
		t.Error("want error for an unimplemented convention")
	}
}
