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
	"strconv"
)

// ParseSubstanceFormula parses a chemical formula such as "H2O",
// "Al2(SO4)3" or "HCO3-" into a map from element symbol to
// stoichiometric amount, plus the electric charge. A trailing "@" marks
// an aqueous species and carries no charge; "+"/"-" optionally followed
// by digits give the charge.
func ParseSubstanceFormula(formula string) (map[string]float64, float64, error) {
	p := &formulaParser{src: formula}
	elements := make(map[string]float64)
	if err := p.parseGroups(elements, 1); err != nil {
		return nil, 0, fmt.Errorf("thermofun: formula %q: %w", formula, err)
	}
	charge, err := p.parseTail()
	if err != nil {
		return nil, 0, fmt.Errorf("thermofun: formula %q: %w", formula, err)
	}
	if len(elements) == 0 {
		return nil, 0, fmt.Errorf("thermofun: formula %q: no elements", formula)
	}
	return elements, charge, nil
}

type formulaParser struct {
	src string
	pos int
}

func (p *formulaParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// parseGroups reads element/group terms until the end of the formula, a
// closing parenthesis, or the charge tail, scaling every amount by mult.
func (p *formulaParser) parseGroups(elements map[string]float64, mult float64) error {
	for {
		switch c := p.peek(); {
		case c == 0, c == ')', c == '+', c == '-', c == '@':
			return nil
		case c == '(':
			p.pos++
			inner := make(map[string]float64)
			if err := p.parseGroups(inner, 1); err != nil {
				return err
			}
			if p.peek() != ')' {
				return fmt.Errorf("unbalanced parenthesis at position %d", p.pos)
			}
			p.pos++
			n := p.parseCount()
			for el, amount := range inner {
				elements[el] += amount * n * mult
			}
		case c >= 'A' && c <= 'Z':
			el := p.parseElement()
			n := p.parseCount()
			elements[el] += n * mult
		default:
			return fmt.Errorf("unexpected character %q at position %d", c, p.pos)
		}
	}
}

func (p *formulaParser) parseElement() string {
	start := p.pos
	p.pos++
	if c := p.peek(); c >= 'a' && c <= 'z' {
		p.pos++
	}
	return p.src[start:p.pos]
}

// parseCount reads an optional decimal amount; a missing amount is 1.
func (p *formulaParser) parseCount() float64 {
	start := p.pos
	for {
		c := p.peek()
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 1
	}
	n, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 1
	}
	return n
}

// parseTail reads the charge suffix and the aqueous marker.
func (p *formulaParser) parseTail() (float64, error) {
	var charge float64
	for {
		switch c := p.peek(); c {
		case 0:
			return charge, nil
		case '@':
			p.pos++
		case '+', '-':
			sign := 1.0
			if c == '-' {
				sign = -1
			}
			p.pos++
			n := p.parseCount()
			charge += sign * n
		default:
			return 0, fmt.Errorf("unexpected character %q at position %d", c, p.pos)
		}
	}
}

// elementEntropies lists the standard entropy of the elements at
// 298.15 K and 1 bar in their reference forms, per mole of atoms
// [J/(mol·K)] (for diatomic elements, half the molecular value). Values
// follow the CODATA/NIST compilations.
var elementEntropies = map[string]float64{
	"H":  65.340,
	"O":  102.575,
	"N":  95.805,
	"F":  101.395,
	"Cl": 111.540,
	"Br": 76.105,
	"I":  58.070,
	"C":  5.740,
	"S":  32.050,
	"P":  41.090,
	"B":  5.900,
	"Si": 18.810,
	"Al": 28.300,
	"Mg": 32.670,
	"Ca": 41.590,
	"Sr": 55.690,
	"Ba": 62.480,
	"Li": 29.120,
	"Na": 51.300,
	"K":  64.680,
	"Rb": 76.780,
	"Cs": 85.230,
	"Fe": 27.320,
	"Mn": 32.010,
	"Ni": 29.870,
	"Co": 30.040,
	"Cr": 23.770,
	"Ti": 30.720,
	"Zr": 39.080,
	"Zn": 41.630,
	"Cu": 33.150,
	"Pb": 64.800,
	"Sn": 51.180,
	"Cd": 51.800,
	"Hg": 75.900,
	"Ag": 42.550,
	"Au": 47.400,
	"Mo": 28.660,
	"W":  32.640,
	"U":  50.200,
	"Be": 9.500,
	"Se": 42.270,
	"As": 35.690,
	"Ar": 154.840,
	"He": 126.150,
	"Ne": 146.330,
}

// ElementalEntropy returns the summed standard entropy of the elements
// composing formula [J/(mol·K)], the quantity the Berman-Brown apparent
// properties convention is defined against. The electric charge does not
// contribute.
func ElementalEntropy(formula string) (float64, error) {
	elements, _, err := ParseSubstanceFormula(formula)
	if err != nil {
		return 0, err
	}
	var sum float64
	for el, amount := range elements {
		s, ok := elementEntropies[el]
		if !ok {
			return 0, fmt.Errorf("thermofun: no elemental entropy for element %q in formula %q", el, formula)
		}
		sum += s * amount
	}
	return sum, nil
}
