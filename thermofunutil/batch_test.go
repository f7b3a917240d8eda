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
	"reflect"
	"strings"
	"testing"

	"github.com/lnashier/viper"
)

const batchTOML = `
Database = "aq17.json"
Solvent = "H2O@"
ApparentConvention = "Benson-Helgeson"
WaterConvention = "steam-tables"
Symbols = ["Qtz", "SiO2@"]
Temperatures = [298.15, 348.15]
Pressures = [1, 1000]
Output = "props.csv"
`

func TestLoadBatch(t *testing.T) {
	b, err := LoadBatch(strings.NewReader(batchTOML))
	if err != nil {
		t.Fatal(err)
	}
	if b.Database != "aq17.json" || b.Solvent != "H2O@" {
		t.Errorf("unexpected batch: %+v", b)
	}
	if b.WaterConvention != "steam-tables" {
		t.Errorf("water convention %q", b.WaterConvention)
	}
	if !reflect.DeepEqual(b.Symbols, []string{"Qtz", "SiO2@"}) {
		t.Errorf("symbols %v", b.Symbols)
	}
	if !reflect.DeepEqual(b.Temperatures, []float64{298.15, 348.15}) {
		t.Errorf("temperatures %v", b.Temperatures)
	}
	if !reflect.DeepEqual(b.Pressures, []float64{1, 1000}) {
		t.Errorf("pressures %v", b.Pressures)
	}
	if err := b.check(); err != nil {
		t.Error(err)
	}
}

func TestLoadBatchErrors(t *testing.T) {
	if _, err := LoadBatch(strings.NewReader("Database = [")); err == nil {
		t.Error("want error for malformed TOML")
	}
	b, err := LoadBatch(strings.NewReader(`Database = "aq17.json"`))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.check(); err == nil {
		t.Error("want error for a batch without symbols")
	}
}

func TestBatchFromCfg(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Database", "aq17.json")
	cfg.Set("Symbols", []string{"Qtz"})
	// Flag values arrive as strings; the parser must cast them.
	cfg.Set("Temperatures", []string{"298.15", "373.15"})
	cfg.Set("Pressures", []interface{}{1.0, 500})

	b, err := BatchFromCfg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if b.Database != "aq17.json" {
		t.Errorf("database %q", b.Database)
	}
	if !reflect.DeepEqual(b.Temperatures, []float64{298.15, 373.15}) {
		t.Errorf("temperatures %v", b.Temperatures)
	}
	if !reflect.DeepEqual(b.Pressures, []float64{1, 500}) {
		t.Errorf("pressures %v", b.Pressures)
	}

	cfg.Set("Temperatures", []string{"cold"})
	if _, err := BatchFromCfg(cfg); err == nil {
		t.Error("want error for an unparseable temperature")
	}
}
