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
	"fmt"
	"strings"
)

// NotFoundError reports a substance or reaction symbol that is absent
// from the database.
type NotFoundError struct {
	Entity string // "substance" or "reaction"
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("thermofun: there is no %s %q in the database", e.Entity, e.Symbol)
}

// ReactionNotDefinedError reports a reaction-derived substance whose
// record carries no parent reaction symbol.
type ReactionNotDefinedError struct {
	Symbol string
}

func (e *ReactionNotDefinedError) Error() string {
	return fmt.Sprintf("thermofun: substance %q is derived from a reaction but its record names no reaction", e.Symbol)
}

// UnsupportedMethodError reports a non-empty method tag for which no
// model is registered in the engine's model library.
type UnsupportedMethodError struct {
	Entity string // "substance", "solvent" or "reaction"
	Symbol string
	Stage  string // dispatch stage, e.g. "temperature correction"
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("thermofun: no %s model registered for %s tag %q of %q",
		e.Entity, e.Stage, e.Method, e.Symbol)
}

// ZeroCoefficientError reports a reaction-derived substance whose
// stoichiometric coefficient in its own parent reaction is zero or
// missing, which would otherwise divide by zero.
type ZeroCoefficientError struct {
	Reaction  string
	Substance string
}

func (e *ZeroCoefficientError) Error() string {
	return fmt.Sprintf("thermofun: substance %q has a zero stoichiometric coefficient in its parent reaction %q",
		e.Substance, e.Reaction)
}

// CycleError reports a substance or reaction whose definition depends,
// directly or through other reactants, on itself. Path lists the
// kind:symbol evaluations on the cycle, outermost first.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("thermofun: cyclic definition: %s", strings.Join(e.Path, " -> "))
}
