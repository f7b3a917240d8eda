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

// Package thermofun calculates the standard thermodynamic properties of
// chemical substances, reactions and solvents over a temperature and
// pressure range. For every record it selects one published correlation
// or equation-of-state model per dispatch stage, composes the stages,
// memoizes the results, and shifts them onto a caller-chosen
// reference-state convention.
package thermofun

import (
	"context"
	"fmt"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/golang/groupcache/lru"
)

// Version gives the version number.
const Version = "0.1.0"

// DefaultSolventSymbol is the symbol the engine looks up as its solvent
// unless SetSolventSymbol is called.
const DefaultSolventSymbol = "H2O@"

// evalProcessors is the number of processors attached to each request
// cache. Evaluations recurse through the caches, and every in-flight
// parent holds one processor while it waits on its children, so this
// must exceed the longest realistic chain of reaction-defined records,
// not the number of CPUs.
const evalProcessors = 128

// defaultCacheSize is the number of property bundles each of the four
// caches holds in memory.
const defaultCacheSize = 1000

// evaluation kinds, used in cache keys and re-entrancy guard entries.
// The reactant aggregation carries its own kind: a reaction's reactant
// list may legitimately include the substance the reaction itself
// defines, and evaluating that reactant re-enters the model-based
// reaction entry point for the same symbol.
const (
	kindSubstance      = "substance"
	kindSolventPVT     = "solvent"
	kindSolventElectro = "electro-solvent"
	kindReaction       = "reaction"
	kindReactionSum    = "reaction-reactants"
)

// DataSource is the engine's view of the substance and reaction store.
// Implementations return a *NotFoundError for absent symbols and must
// treat returned records as immutable.
type DataSource interface {
	Substance(symbol string) (*Substance, error)
	Reaction(symbol string) (*Reaction, error)
}

// Engine evaluates thermodynamic properties against one database and one
// model library. The four evaluation entry points are memoized per
// (temperature, pressure, symbol) and are safe for concurrent use.
// Engine-wide configuration (solvent symbol, conventions) is not part of
// the cache key; the setters invalidate the caches in full and must not
// run concurrently with evaluations. Reaction-derived definitions are
// evaluated recursively, and every level of a definition chain holds one
// cache processor while waiting on its children, so chains are supported
// up to the evalProcessors pool size per family.
type Engine struct {
	db     DataSource
	models *ModelLibrary

	mx            sync.RWMutex
	solventSymbol string
	conventions   map[ConventionFamily]string

	substanceCache *evalCache
	solventCache   *evalCache
	electroCache   *evalCache
	reactionCache  *evalCache
}

// NewEngine returns an engine evaluating records from db with the models
// registered in lib. The solvent symbol defaults to DefaultSolventSymbol
// and the conventions to Benson-Helgeson apparent properties with no
// water-properties shift.
func NewEngine(db DataSource, lib *ModelLibrary) *Engine {
	e := &Engine{
		db:            db,
		models:        lib,
		solventSymbol: DefaultSolventSymbol,
		conventions: map[ConventionFamily]string{
			ApparentProperties: ConventionBensonHelgeson,
			WaterProperties:    "",
		},
	}
	e.initCaches()
	return e
}

// initCaches builds the four memoization caches. It is also the cache
// invalidation mechanism: configuration setters call it again, dropping
// every stored bundle, because configuration is not part of the key.
// Failed evaluations propagate their error and are not stored.
func (e *Engine) initCaches() {
	e.substanceCache = newEvalCache(func(ctx context.Context, req interface{}) (interface{}, error) {
		r := req.(evalRequest)
		return e.computeSubstance(r.guard, r.T, r.P, r.symbol)
	})
	e.solventCache = newEvalCache(func(ctx context.Context, req interface{}) (interface{}, error) {
		r := req.(evalRequest)
		return e.computeSolventPVT(r.T, r.P, r.symbol)
	})
	e.electroCache = newEvalCache(func(ctx context.Context, req interface{}) (interface{}, error) {
		r := req.(evalRequest)
		return e.computeSolventElectro(r.guard, r.T, r.P, r.symbol)
	})
	e.reactionCache = newEvalCache(func(ctx context.Context, req interface{}) (interface{}, error) {
		r := req.(evalRequest)
		return e.computeReaction(r.guard, r.T, r.P, r.symbol)
	})
}

// evalCache memoizes one evaluation family: a mutex-guarded LRU of
// successful results in front of a requestcache processor pool.
// requestcache's own in-memory stage stores a result on the requesting
// goroutine during request finalization while looking results up on the
// cache goroutine, so concurrent misses race on its unsynchronized LRU;
// keeping the memory layer here, under a lock, makes concurrent
// get-or-compute safe. Misses racing on one key may both compute, and
// both store the same value.
type evalCache struct {
	mx       sync.Mutex
	memory   *lru.Cache
	requests *requestcache.Cache
}

func newEvalCache(pf requestcache.ProcessFunc) *evalCache {
	return &evalCache{
		memory:   lru.New(defaultCacheSize),
		requests: requestcache.NewCache(pf, evalProcessors),
	}
}

// result returns the memoized value for req's state point, computing it
// through the processor pool on a miss.
func (c *evalCache) result(req evalRequest) (interface{}, error) {
	key := cacheKey(req.symbol, req.T, req.P)
	c.mx.Lock()
	v, ok := c.memory.Get(key)
	c.mx.Unlock()
	if ok {
		return v, nil
	}
	v, err := c.requests.NewRequest(context.TODO(), req, key).Result()
	if err != nil {
		return nil, err
	}
	c.mx.Lock()
	c.memory.Add(key, v)
	c.mx.Unlock()
	return v, nil
}

// evalRequest is the payload handed to a cache processor. The guard
// travels with the request but stays out of the key: it does not affect
// the value, only whether a cyclic evaluation is reported.
type evalRequest struct {
	T, P   float64
	symbol string
	guard  *evalGuard
}

// cacheKey formats a (symbol, T, P) triple. %g prints the shortest
// representation that round-trips a float64, so distinct states never
// share a key.
func cacheKey(symbol string, T, P float64) string {
	return fmt.Sprintf("%s_%g_%g", symbol, T, P)
}

// evalGuard tracks the kind:symbol evaluations on the path of one
// top-level call, converting accidental substance/reaction definition
// cycles into a CycleError instead of unbounded recursion. Each
// top-level call gets a fresh guard; within a call the recursion is
// sequential, so no locking is needed.
type evalGuard struct {
	active map[string]bool
	path   []string
}

func newEvalGuard() *evalGuard {
	return &evalGuard{active: make(map[string]bool)}
}

func (g *evalGuard) enter(kind, symbol string) error {
	k := kind + ":" + symbol
	if g.active[k] {
		return &CycleError{Path: append(append([]string{}, g.path...), k)}
	}
	g.active[k] = true
	g.path = append(g.path, k)
	return nil
}

func (g *evalGuard) leave(kind, symbol string) {
	delete(g.active, kind+":"+symbol)
	g.path = g.path[:len(g.path)-1]
}

// SetSolventSymbol changes the symbol the engine evaluates as its
// solvent. It invalidates all cached results and must not be called
// concurrently with evaluations.
func (e *Engine) SetSolventSymbol(symbol string) {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.solventSymbol = symbol
	e.initCaches()
}

// SolventSymbol returns the configured solvent symbol.
func (e *Engine) SolventSymbol() string {
	e.mx.RLock()
	defer e.mx.RUnlock()
	return e.solventSymbol
}

// ThermoPropertiesSubstance returns the standard thermodynamic
// properties of the substance registered under symbol at temperature T
// [K] and pressure P [bar].
func (e *Engine) ThermoPropertiesSubstance(T, P float64, symbol string) (ThermoPropertiesSubstance, error) {
	return e.thermoPropertiesSubstance(newEvalGuard(), T, P, symbol)
}

// PropertiesSolvent returns the PVT properties of the substance
// registered under symbol, or a zero bundle if that substance is not an
// aqueous solvent.
func (e *Engine) PropertiesSolvent(T, P float64, symbol string) (PropertiesSolvent, error) {
	return e.propertiesSolvent(newEvalGuard(), T, P, symbol)
}

// ElectroPropertiesSolvent returns the dielectric properties of the
// substance registered under symbol, or a zero bundle if that substance
// is not an aqueous solvent.
func (e *Engine) ElectroPropertiesSolvent(T, P float64, symbol string) (ElectroPropertiesSolvent, error) {
	return e.electroPropertiesSolvent(newEvalGuard(), T, P, symbol)
}

// ThermoPropertiesReaction returns the properties of the reaction
// registered under symbol, evaluated with the reaction's own models.
func (e *Engine) ThermoPropertiesReaction(T, P float64, symbol string) (ThermoPropertiesReaction, error) {
	return e.thermoPropertiesReaction(newEvalGuard(), T, P, symbol)
}

func (e *Engine) thermoPropertiesSubstance(g *evalGuard, T, P float64, symbol string) (ThermoPropertiesSubstance, error) {
	if err := g.enter(kindSubstance, symbol); err != nil {
		return ThermoPropertiesSubstance{}, err
	}
	defer g.leave(kindSubstance, symbol)
	e.mx.RLock()
	c := e.substanceCache
	e.mx.RUnlock()
	result, err := c.result(evalRequest{T: T, P: P, symbol: symbol, guard: g})
	if err != nil {
		return ThermoPropertiesSubstance{}, err
	}
	return result.(ThermoPropertiesSubstance), nil
}

func (e *Engine) propertiesSolvent(g *evalGuard, T, P float64, symbol string) (PropertiesSolvent, error) {
	if err := g.enter(kindSolventPVT, symbol); err != nil {
		return PropertiesSolvent{}, err
	}
	defer g.leave(kindSolventPVT, symbol)
	e.mx.RLock()
	c := e.solventCache
	e.mx.RUnlock()
	result, err := c.result(evalRequest{T: T, P: P, symbol: symbol, guard: g})
	if err != nil {
		return PropertiesSolvent{}, err
	}
	return result.(PropertiesSolvent), nil
}

func (e *Engine) electroPropertiesSolvent(g *evalGuard, T, P float64, symbol string) (ElectroPropertiesSolvent, error) {
	if err := g.enter(kindSolventElectro, symbol); err != nil {
		return ElectroPropertiesSolvent{}, err
	}
	defer g.leave(kindSolventElectro, symbol)
	e.mx.RLock()
	c := e.electroCache
	e.mx.RUnlock()
	result, err := c.result(evalRequest{T: T, P: P, symbol: symbol, guard: g})
	if err != nil {
		return ElectroPropertiesSolvent{}, err
	}
	return result.(ElectroPropertiesSolvent), nil
}

func (e *Engine) thermoPropertiesReaction(g *evalGuard, T, P float64, symbol string) (ThermoPropertiesReaction, error) {
	if err := g.enter(kindReaction, symbol); err != nil {
		return ThermoPropertiesReaction{}, err
	}
	defer g.leave(kindReaction, symbol)
	e.mx.RLock()
	c := e.reactionCache
	e.mx.RUnlock()
	result, err := c.result(evalRequest{T: T, P: P, symbol: symbol, guard: g})
	if err != nil {
		return ThermoPropertiesReaction{}, err
	}
	return result.(ThermoPropertiesReaction), nil
}

// computeSubstance is the substance dispatcher. It runs on a cache miss.
func (e *Engine) computeSubstance(g *evalGuard, T, P float64, symbol string) (ThermoPropertiesSubstance, error) {
	pref, err := e.thermoPreferences(symbol)
	if err != nil {
		return ThermoPropertiesSubstance{}, fmt.Errorf("thermofun: substance properties of %q: %w", symbol, err)
	}

	var tps ThermoPropertiesSubstance
	if pref.IsHydrogenIon {
		// The proton's properties are zero in every convention.
		return tps, nil
	}
	if pref.IsReactionDerived {
		return e.substanceFromReaction(g, T, P, pref.Substance)
	}

	ctx := &EvalContext{engine: e, guard: g}
	s := pref.Substance
	if !pref.IsAqueousSolvent && !pref.IsWaterVapor {
		if pref.MethodEOS != "" {
			m, ok := e.models.substanceEOS[pref.MethodEOS]
			if !ok {
				return tps, &UnsupportedMethodError{Entity: "substance", Symbol: symbol,
					Stage: "equation of state", Method: string(pref.MethodEOS)}
			}
			if tps, err = m.ThermoProperties(ctx, T, P, s); err != nil {
				return ThermoPropertiesSubstance{}, err
			}
		}
		if pref.MethodT != "" {
			m, ok := e.models.substanceTCorr[pref.MethodT]
			if !ok {
				return ThermoPropertiesSubstance{}, &UnsupportedMethodError{Entity: "substance", Symbol: symbol,
					Stage: "temperature correction", Method: string(pref.MethodT)}
			}
			if tps, err = m.Correct(ctx, T, P, s, tps); err != nil {
				return ThermoPropertiesSubstance{}, err
			}
		}
		if pref.MethodP != "" {
			m, ok := e.models.substancePCorr[pref.MethodP]
			if !ok {
				return ThermoPropertiesSubstance{}, &UnsupportedMethodError{Entity: "substance", Symbol: symbol,
					Stage: "pressure correction", Method: string(pref.MethodP)}
			}
			if tps, err = m.Correct(ctx, T, P, s, tps); err != nil {
				return ThermoPropertiesSubstance{}, err
			}
		}
	} else {
		// Water itself: the temperature-correction tag selects among
		// the water property models; otherwise fall back to the
		// record's generic equation of state.
		if wm, ok := e.models.solventThermo[pref.MethodT]; ok {
			tps, err = wm.ThermoPropertiesSubstance(T, P, s, pref.SolventState)
		} else if m, ok := e.models.substanceEOS[pref.MethodEOS]; ok {
			tps, err = m.ThermoProperties(ctx, T, P, s)
		} else {
			return tps, &UnsupportedMethodError{Entity: "solvent", Symbol: symbol,
				Stage: "water model", Method: string(pref.MethodT)}
		}
		if err != nil {
			return ThermoPropertiesSubstance{}, err
		}
	}

	return e.applyConvention(pref, tps)
}

// computeSolventPVT dispatches the solvent PVT family on the
// temperature-correction tag. Entities that are not an aqueous solvent
// get the zero bundle.
func (e *Engine) computeSolventPVT(T, P float64, symbol string) (PropertiesSolvent, error) {
	pref, err := e.thermoPreferences(symbol)
	if err != nil {
		return PropertiesSolvent{}, fmt.Errorf("thermofun: solvent properties of %q: %w", symbol, err)
	}
	var ps PropertiesSolvent
	if !pref.IsAqueousSolvent {
		return ps, nil
	}
	m, ok := e.models.solventPVT[pref.MethodT]
	if !ok {
		return ps, &UnsupportedMethodError{Entity: "solvent", Symbol: symbol,
			Stage: "PVT model", Method: string(pref.MethodT)}
	}
	return m.PropertiesSolvent(T, P, pref.Substance, pref.SolventState)
}

// computeSolventElectro dispatches the dielectric family on the
// equation-of-state tag, feeding it the memoized PVT bundle at the same
// state point. Entities that are not an aqueous solvent get the zero
// bundle.
func (e *Engine) computeSolventElectro(g *evalGuard, T, P float64, symbol string) (ElectroPropertiesSolvent, error) {
	pref, err := e.thermoPreferences(symbol)
	if err != nil {
		return ElectroPropertiesSolvent{}, fmt.Errorf("thermofun: electro properties of %q: %w", symbol, err)
	}
	var eps ElectroPropertiesSolvent
	if !pref.IsAqueousSolvent {
		return eps, nil
	}
	ps, err := e.propertiesSolvent(g, T, P, symbol)
	if err != nil {
		return eps, err
	}
	m, ok := e.models.solventElectro[pref.MethodEOS]
	if !ok {
		return eps, &UnsupportedMethodError{Entity: "solvent", Symbol: symbol,
			Stage: "dielectric model", Method: string(pref.MethodEOS)}
	}
	return m.ElectroProperties(T, P, pref.Substance, ps)
}

// computeReaction dispatches the reaction family: a temperature model
// first, then a pressure correction refining its output.
func (e *Engine) computeReaction(g *evalGuard, T, P float64, symbol string) (ThermoPropertiesReaction, error) {
	r, err := e.db.Reaction(symbol)
	if err != nil {
		return ThermoPropertiesReaction{}, fmt.Errorf("thermofun: reaction properties of %q: %w", symbol, err)
	}
	ctx := &EvalContext{engine: e, guard: g}
	var tpr ThermoPropertiesReaction
	if r.MethodT != "" {
		m, ok := e.models.reactionThermo[r.MethodT]
		if !ok {
			return tpr, &UnsupportedMethodError{Entity: "reaction", Symbol: symbol,
				Stage: "temperature correction", Method: string(r.MethodT)}
		}
		if tpr, err = m.ThermoProperties(ctx, T, P, r); err != nil {
			return ThermoPropertiesReaction{}, err
		}
	}
	if r.MethodP != "" {
		m, ok := e.models.reactionPCorr[r.MethodP]
		if !ok {
			return ThermoPropertiesReaction{}, &UnsupportedMethodError{Entity: "reaction", Symbol: symbol,
				Stage: "pressure correction", Method: string(r.MethodP)}
		}
		if tpr, err = m.Correct(T, P, r, tpr); err != nil {
			return ThermoPropertiesReaction{}, err
		}
	}
	return tpr, nil
}

// EvalContext gives model implementations access to the memoized
// evaluations of the engine that invoked them. HKF-type solute models
// consume solvent PVT and dielectric bundles through it, and pressure
// corrections of the Akinfiev-Diamond kind chain back into the engine at
// both the query and the solvent reference state. All calls share the
// caller's re-entrancy guard.
type EvalContext struct {
	engine *Engine
	guard  *evalGuard
}

// SolventSymbol returns the engine's configured solvent symbol.
func (c *EvalContext) SolventSymbol() string {
	return c.engine.SolventSymbol()
}

// Solvent returns the record of the engine's configured solvent.
func (c *EvalContext) Solvent() (*Substance, error) {
	return c.engine.db.Substance(c.engine.SolventSymbol())
}

// PropertiesSolvent returns the PVT properties of the engine's solvent
// at (T, P).
func (c *EvalContext) PropertiesSolvent(T, P float64) (PropertiesSolvent, error) {
	return c.engine.propertiesSolvent(c.guard, T, P, c.engine.SolventSymbol())
}

// ElectroPropertiesSolvent returns the dielectric properties of the
// engine's solvent at (T, P).
func (c *EvalContext) ElectroPropertiesSolvent(T, P float64) (ElectroPropertiesSolvent, error) {
	return c.engine.electroPropertiesSolvent(c.guard, T, P, c.engine.SolventSymbol())
}

// ThermoPropertiesSubstance returns the properties of any substance at
// (T, P), evaluated through the engine's memoized entry point.
func (c *EvalContext) ThermoPropertiesSubstance(T, P float64, symbol string) (ThermoPropertiesSubstance, error) {
	return c.engine.thermoPropertiesSubstance(c.guard, T, P, symbol)
}
