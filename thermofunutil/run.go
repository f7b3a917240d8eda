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

	"github.com/sirupsen/logrus"

	"github.com/thermomod/thermofun"
)

// Runner evaluates one batch calculation end to end: it loads the
// database, configures an engine, and writes the property table.
type Runner struct {
	Batch *Batch

	// Models holds the model library records are dispatched against.
	// If nil, DefaultModels() is used.
	Models *thermofun.ModelLibrary

	// Log specifies the logger. If Log is nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

// Run performs the calculation described by r.Batch.
func (r *Runner) Run() error {
	if r.Log == nil {
		r.Log = logrus.StandardLogger()
	}
	if r.Models == nil {
		r.Models = DefaultModels()
	}
	if err := r.Batch.check(); err != nil {
		return err
	}

	r.Log.WithFields(logrus.Fields{
		"database": r.Batch.Database,
	}).Info("thermofun loading database")
	f, err := os.Open(os.ExpandEnv(r.Batch.Database))
	if err != nil {
		return fmt.Errorf("thermofunutil: opening database: %v", err)
	}
	db, err := thermofun.LoadDatabase(f)
	f.Close()
	if err != nil {
		return err
	}
	r.Log.WithFields(logrus.Fields{
		"substances": len(db.SubstanceSymbols()),
		"reactions":  len(db.ReactionSymbols()),
	}).Info("thermofun database loaded")

	engine := thermofun.NewEngine(db, r.Models)
	if r.Batch.Solvent != "" {
		engine.SetSolventSymbol(r.Batch.Solvent)
	}
	if c := r.Batch.ApparentConvention; c != "" {
		if err := engine.SetConvention(thermofun.ApparentProperties, c); err != nil {
			return err
		}
	}
	if c := r.Batch.WaterConvention; c != "" {
		if err := engine.SetConvention(thermofun.WaterProperties, c); err != nil {
			return err
		}
	}

	out, closeOut, err := r.output()
	if err != nil {
		return err
	}

	r.Log.WithFields(logrus.Fields{
		"symbols":      len(r.Batch.Symbols),
		"temperatures": len(r.Batch.Temperatures),
		"pressures":    len(r.Batch.Pressures),
	}).Info("thermofun calculating property table")
	w := &thermofun.PropertyWriter{Engine: engine}
	if err := w.WriteTable(out, r.Batch.Symbols, r.Batch.Temperatures, r.Batch.Pressures); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("thermofunutil: closing output: %v", err)
	}
	r.Log.Info("thermofun finished")
	return nil
}

// output opens the batch output destination. The returned function
// flushes and closes it; for standard output it does nothing.
func (r *Runner) output() (io.Writer, func() error, error) {
	if r.Batch.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(os.ExpandEnv(r.Batch.Output))
	if err != nil {
		return nil, nil, fmt.Errorf("thermofunutil: creating output file: %v", err)
	}
	return f, f.Close, nil
}
