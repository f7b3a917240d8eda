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

// EOSMethod, TCorrMethod and PCorrMethod tag the equation-of-state,
// temperature-correction and pressure-correction model of a record. Each
// dispatch stage runs at most one model; tags within a stage are
// mutually exclusive.
type EOSMethod string

// TCorrMethod tags a temperature-correction model. For an
// aqueous-solvent record it selects the water property model instead.
type TCorrMethod string

// PCorrMethod tags a pressure-correction model.
type PCorrMethod string

// Method tags the dispatcher itself inspects. Models for these tags may
// be registered like any others; the tags additionally flag gas-phase
// water when they appear together on a record (HKF equation of state
// combined with ideal-gas pressure behavior).
const (
	EOSMethodHKF        EOSMethod   = "hkf"
	PCorrMethodIdealGas PCorrMethod = "ideal-gas"
)

// SolventState distinguishes the phase a solvent model should evaluate.
type SolventState int

const (
	SolventLiquid SolventState = iota
	SolventVapor
)

// SubstanceEOS computes the standard thermodynamic properties of a
// substance from scratch. Implementations must be pure functions of
// their arguments: deterministic and free of side effects. Models that
// need solvent properties at the same state point, such as HKF-type
// solute formulations, obtain them through the EvalContext.
type SubstanceEOS interface {
	ThermoProperties(ctx *EvalContext, T, P float64, s *Substance) (ThermoPropertiesSubstance, error)
}

// SubstanceCorrection refines the property bundle produced by an earlier
// dispatch stage. It receives the prior bundle and returns the corrected
// one; it must not depend on anything but its arguments. Corrections
// that need engine-level evaluations at other state points, such as an
// Akinfiev-Diamond-type pressure correction that consumes solvent
// properties at both the query and the solvent reference conditions,
// obtain them through the EvalContext.
type SubstanceCorrection interface {
	Correct(ctx *EvalContext, T, P float64, s *Substance, in ThermoPropertiesSubstance) (ThermoPropertiesSubstance, error)
}

// SolventThermoModel computes the standard thermodynamic properties of
// the solvent substance itself.
type SolventThermoModel interface {
	ThermoPropertiesSubstance(T, P float64, s *Substance, state SolventState) (ThermoPropertiesSubstance, error)
}

// SolventPVTModel computes the volumetric properties of the solvent.
type SolventPVTModel interface {
	PropertiesSolvent(T, P float64, s *Substance, state SolventState) (PropertiesSolvent, error)
}

// SolventElectroModel computes the dielectric properties of the solvent.
// It receives the solvent PVT bundle evaluated at the same (T, P).
type SolventElectroModel interface {
	ElectroProperties(T, P float64, s *Substance, ps PropertiesSolvent) (ElectroPropertiesSolvent, error)
}

// ReactionModel computes the properties of a reaction as a function of
// temperature. Models that need solvent properties, such as the
// density-model correlations, obtain them through the EvalContext.
type ReactionModel interface {
	ThermoProperties(ctx *EvalContext, T, P float64, r *Reaction) (ThermoPropertiesReaction, error)
}

// ReactionCorrection applies a pressure correction on top of a reaction
// model's output.
type ReactionCorrection interface {
	Correct(T, P float64, r *Reaction, in ThermoPropertiesReaction) (ThermoPropertiesReaction, error)
}

// ModelLibrary maps method tags to model implementations, one registry
// per dispatch stage. Adding a model means registering one entry; the
// dispatcher never needs editing. A ModelLibrary is not safe for
// concurrent mutation; register everything before handing it to an
// engine.
type ModelLibrary struct {
	substanceEOS   map[EOSMethod]SubstanceEOS
	substanceTCorr map[TCorrMethod]SubstanceCorrection
	substancePCorr map[PCorrMethod]SubstanceCorrection
	solventThermo  map[TCorrMethod]SolventThermoModel
	solventPVT     map[TCorrMethod]SolventPVTModel
	solventElectro map[EOSMethod]SolventElectroModel
	reactionThermo map[TCorrMethod]ReactionModel
	reactionPCorr  map[PCorrMethod]ReactionCorrection
}

// NewModelLibrary returns an empty model library.
func NewModelLibrary() *ModelLibrary {
	return &ModelLibrary{
		substanceEOS:   make(map[EOSMethod]SubstanceEOS),
		substanceTCorr: make(map[TCorrMethod]SubstanceCorrection),
		substancePCorr: make(map[PCorrMethod]SubstanceCorrection),
		solventThermo:  make(map[TCorrMethod]SolventThermoModel),
		solventPVT:     make(map[TCorrMethod]SolventPVTModel),
		solventElectro: make(map[EOSMethod]SolventElectroModel),
		reactionThermo: make(map[TCorrMethod]ReactionModel),
		reactionPCorr:  make(map[PCorrMethod]ReactionCorrection),
	}
}

// RegisterSubstanceEOS registers an equation-of-state model under tag.
func (l *ModelLibrary) RegisterSubstanceEOS(tag EOSMethod, m SubstanceEOS) {
	l.substanceEOS[tag] = m
}

// RegisterSubstanceTCorr registers a substance temperature correction.
func (l *ModelLibrary) RegisterSubstanceTCorr(tag TCorrMethod, m SubstanceCorrection) {
	l.substanceTCorr[tag] = m
}

// RegisterSubstancePCorr registers a substance pressure correction.
func (l *ModelLibrary) RegisterSubstancePCorr(tag PCorrMethod, m SubstanceCorrection) {
	l.substancePCorr[tag] = m
}

// RegisterSolventThermo registers a solvent thermodynamic model.
func (l *ModelLibrary) RegisterSolventThermo(tag TCorrMethod, m SolventThermoModel) {
	l.solventThermo[tag] = m
}

// RegisterSolventPVT registers a solvent PVT model.
func (l *ModelLibrary) RegisterSolventPVT(tag TCorrMethod, m SolventPVTModel) {
	l.solventPVT[tag] = m
}

// RegisterSolventElectro registers a solvent dielectric model.
func (l *ModelLibrary) RegisterSolventElectro(tag EOSMethod, m SolventElectroModel) {
	l.solventElectro[tag] = m
}

// RegisterReactionModel registers a reaction temperature model.
func (l *ModelLibrary) RegisterReactionModel(tag TCorrMethod, m ReactionModel) {
	l.reactionThermo[tag] = m
}

// RegisterReactionCorrection registers a reaction pressure correction.
func (l *ModelLibrary) RegisterReactionCorrection(tag PCorrMethod, m ReactionCorrection) {
	l.reactionPCorr[tag] = m
}
