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
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Database is an in-memory substance and reaction store keyed by symbol.
// It implements DataSource. Records are treated as immutable once added;
// callers must not modify a record after handing it to the database.
type Database struct {
	substances map[string]*Substance
	reactions  map[string]*Reaction
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{
		substances: make(map[string]*Substance),
		reactions:  make(map[string]*Reaction),
	}
}

// LoadDatabase reads a JSON database document of the form
//
//	{"substances": [...], "reactions": [...]}
//
// from r. Records without a symbol are rejected; a symbol appearing
// twice keeps the last record.
func LoadDatabase(r io.Reader) (*Database, error) {
	var doc struct {
		Substances []*Substance `json:"substances"`
		Reactions  []*Reaction  `json:"reactions"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("thermofun: decoding database: %w", err)
	}
	db := NewDatabase()
	for _, s := range doc.Substances {
		if s.Symbol == "" {
			return nil, fmt.Errorf("thermofun: database contains a substance record without a symbol")
		}
		db.substances[s.Symbol] = s
	}
	for _, rec := range doc.Reactions {
		if rec.Symbol == "" {
			return nil, fmt.Errorf("thermofun: database contains a reaction record without a symbol")
		}
		db.reactions[rec.Symbol] = rec
	}
	return db, nil
}

// AddSubstance stores s under its symbol, replacing any previous record.
func (d *Database) AddSubstance(s *Substance) {
	d.substances[s.Symbol] = s
}

// AddReaction stores r under its symbol, replacing any previous record.
func (d *Database) AddReaction(r *Reaction) {
	d.reactions[r.Symbol] = r
}

// Substance returns the substance registered under symbol.
func (d *Database) Substance(symbol string) (*Substance, error) {
	s, ok := d.substances[symbol]
	if !ok {
		return nil, &NotFoundError{Entity: "substance", Symbol: symbol}
	}
	return s, nil
}

// Reaction returns the reaction registered under symbol.
func (d *Database) Reaction(symbol string) (*Reaction, error) {
	r, ok := d.reactions[symbol]
	if !ok {
		return nil, &NotFoundError{Entity: "reaction", Symbol: symbol}
	}
	return r, nil
}

// SubstanceSymbols returns the symbols of all substances, sorted.
func (d *Database) SubstanceSymbols() []string {
	symbols := make([]string, 0, len(d.substances))
	for s := range d.substances {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// ReactionSymbols returns the symbols of all reactions, sorted.
func (d *Database) ReactionSymbols() []string {
	symbols := make([]string, 0, len(d.reactions))
	for s := range d.reactions {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
