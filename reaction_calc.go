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
	"math"
)

// substanceFromReaction computes the properties of a reaction-defined
// substance: start from the parent reaction's property changes, subtract
// the contribution of every other reactant, and divide by the target's
// own stoichiometric coefficient. Reaction and reactant properties are
// fetched through the memoized entry points, so shared intermediates are
// computed once per engine.
func (e *Engine) substanceFromReaction(g *evalGuard, T, P float64, s *Substance) (ThermoPropertiesSubstance, error) {
	var tps ThermoPropertiesSubstance
	if s.ReactionSymbol == "" {
		return tps, &ReactionNotDefinedError{Symbol: s.Symbol}
	}
	r, err := e.db.Reaction(s.ReactionSymbol)
	if err != nil {
		return tps, fmt.Errorf("thermofun: substance %q derived from reaction: %w", s.Symbol, err)
	}
	tpr, err := e.thermoPropertiesReaction(g, T, P, s.ReactionSymbol)
	if err != nil {
		return tps, err
	}

	tps = ThermoPropertiesSubstance{
		GibbsEnergy:     tpr.ReactionGibbsEnergy,
		Enthalpy:        tpr.ReactionEnthalpy,
		Entropy:         tpr.ReactionEntropy,
		HeatCapacityCp:  tpr.ReactionHeatCapacityCp,
		HeatCapacityCv:  tpr.ReactionHeatCapacityCv,
		Volume:          tpr.ReactionVolume,
		HelmholtzEnergy: tpr.ReactionHelmholtzEnergy,
		InternalEnergy:  tpr.ReactionInternalEnergy,
	}

	coeff, participates := r.Coefficient(s.Symbol)
	for _, rt := range r.Reactants {
		if rt.Symbol == s.Symbol {
			continue
		}
		rtps, err := e.thermoPropertiesSubstance(g, T, P, rt.Symbol)
		if err != nil {
			return ThermoPropertiesSubstance{}, err
		}
		tps.subtractScaled(rtps, rt.Coefficient)
	}
	if !participates || coeff == 0 {
		return ThermoPropertiesSubstance{}, &ZeroCoefficientError{Reaction: r.Symbol, Substance: s.Symbol}
	}
	tps.divide(coeff)
	return tps, nil
}

// ThermoPropertiesReactionFromReactants computes the properties of the
// reaction registered under symbol as the stoichiometric sum of its
// reactants' substance properties, and derives the equilibrium constant
// from the accumulated Gibbs energy via ΔG = −RT·ln K. Every summed
// field carries a provenance annotation naming the contributing
// components. This aggregation is independent of the reaction's own
// temperature and pressure models.
func (e *Engine) ThermoPropertiesReactionFromReactants(T, P float64, symbol string) (ThermoPropertiesReaction, error) {
	g := newEvalGuard()
	if err := g.enter(kindReactionSum, symbol); err != nil {
		return ThermoPropertiesReaction{}, err
	}
	defer g.leave(kindReactionSum, symbol)

	r, err := e.db.Reaction(symbol)
	if err != nil {
		return ThermoPropertiesReaction{}, fmt.Errorf("thermofun: reaction %q from reactants: %w", symbol, err)
	}

	var tpr ThermoPropertiesReaction
	message := "calculated from the reaction components: " + r.Symbol + "; "
	for _, rt := range r.Reactants {
		tps, err := e.thermoPropertiesSubstance(g, T, P, rt.Symbol)
		if err != nil {
			return ThermoPropertiesReaction{}, err
		}
		addTerm := func(dst *Quantity, src Quantity, label string) {
			dst.Val += src.Val * rt.Coefficient
			sta := message + label + " of component " + rt.Symbol
			if src.Sta != "" {
				sta += " (" + src.Sta + ")"
			}
			dst.Sta = sta
		}
		addTerm(&tpr.ReactionHeatCapacityCp, tps.HeatCapacityCp, "Cp")
		addTerm(&tpr.ReactionGibbsEnergy, tps.GibbsEnergy, "G0")
		addTerm(&tpr.ReactionEnthalpy, tps.Enthalpy, "H0")
		addTerm(&tpr.ReactionEntropy, tps.Entropy, "S0")
		addTerm(&tpr.ReactionVolume, tps.Volume, "V0")
	}
	tpr.LnEquilibriumConstant.Val = -tpr.ReactionGibbsEnergy.Val / (RConstant * T)
	tpr.LnEquilibriumConstant.Sta = tpr.ReactionGibbsEnergy.Sta
	tpr.LogEquilibriumConstant.Val = tpr.LnEquilibriumConstant.Val / math.Ln10
	tpr.LogEquilibriumConstant.Sta = tpr.ReactionGibbsEnergy.Sta
	return tpr, nil
}
