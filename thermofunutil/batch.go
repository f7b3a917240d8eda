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
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Batch describes one property-table calculation: which database to
// load, which records to evaluate, over which temperature and pressure
// grid, and where to write the result.
type Batch struct {
	// Database is the path of the JSON substance and reaction
	// database to evaluate records from.
	Database string

	// Solvent is the symbol of the aqueous-solvent record. If empty,
	// the engine default is used.
	Solvent string

	// ApparentConvention and WaterConvention name the reference-state
	// conventions for the two convention families. Empty fields keep
	// the engine defaults.
	ApparentConvention string
	WaterConvention    string

	// Symbols lists the substance records to evaluate.
	Symbols []string

	// Temperatures [K] and Pressures [bar] span the calculation grid.
	// Every symbol is evaluated at every combination.
	Temperatures []float64
	Pressures    []float64

	// Output is the path the CSV table is written to. If empty, the
	// table goes to standard output.
	Output string
}

// LoadBatch reads a TOML batch description from r.
func LoadBatch(r io.Reader) (*Batch, error) {
	b := new(Batch)
	if _, err := toml.DecodeReader(r, b); err != nil {
		return nil, fmt.Errorf("thermofunutil: decoding batch configuration: %v", err)
	}
	return b, nil
}

// ReadBatchFile reads a TOML batch description from the file at path,
// expanding any environment variables in the path.
func ReadBatchFile(path string) (*Batch, error) {
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("thermofunutil: opening batch configuration: %v", err)
	}
	defer f.Close()
	return LoadBatch(f)
}

// check returns an error describing the first problem that would keep
// the batch from producing any output.
func (b *Batch) check() error {
	if b.Database == "" {
		return fmt.Errorf("thermofunutil: no database specified. Please fill in " +
			"the Database configuration and try again.")
	}
	if len(b.Symbols) == 0 {
		return fmt.Errorf("thermofunutil: there are no symbols specified for output. " +
			"Please fill in the Symbols configuration and try again.")
	}
	if len(b.Temperatures) == 0 || len(b.Pressures) == 0 {
		return fmt.Errorf("thermofunutil: the Temperatures and Pressures configurations " +
			"must each hold at least one value.")
	}
	return nil
}
