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

// ConventionFamily names one of the two independent reference-state
// convention choices of an engine.
type ConventionFamily string

const (
	// ApparentProperties selects the convention for apparent Gibbs
	// energies and enthalpies of non-solvent substances.
	ApparentProperties ConventionFamily = "apparent-properties"
	// WaterProperties selects the convention for the properties of the
	// solvent itself.
	WaterProperties ConventionFamily = "water-properties"
)

// Implemented convention names. Any name not matched case-insensitively
// by the converter leaves the raw bundle unchanged; Benson-Helgeson and
// the empty name are such identity conventions.
const (
	ConventionBensonHelgeson = "Benson-Helgeson"
	ConventionBermanBrown    = "Berman-Brown"
	ConventionSteamTables    = "steam-tables"
)

// implementedConventions maps each convention name to the family it
// belongs to.
var implementedConventions = map[string]ConventionFamily{
	ConventionBensonHelgeson: ApparentProperties,
	ConventionBermanBrown:    ApparentProperties,
	ConventionSteamTables:    WaterProperties,
}

const calToJ = 4.184

// Steam-tables reference-state offsets of liquid water at the triple
// point, from Helgeson and Kirkham (1974) p. 1098, converted to J/mol
// and J/(mol·K).
const (
	steamTablesEntropy   = 15.1320 * calToJ
	steamTablesGibbs     = -56290.0 * calToJ
	steamTablesEnthalpy  = -68767.0 * calToJ
	steamTablesInternal  = -67887.0 * calToJ
	steamTablesHelmholtz = -55415.0 * calToJ
)

// SetConvention chooses the active convention for one family. The empty
// name resets the family to the identity transform. It invalidates all
// cached results and must not be called concurrently with evaluations.
func (e *Engine) SetConvention(family ConventionFamily, name string) error {
	if family != ApparentProperties && family != WaterProperties {
		return fmt.Errorf("thermofun: unknown convention family %q", family)
	}
	if name != "" {
		fam, ok := lookupConvention(name)
		if !ok {
			return fmt.Errorf("thermofun: %q is not an implemented convention", name)
		}
		if fam != family {
			return fmt.Errorf("thermofun: convention %q belongs to the %s family, not %s", name, fam, family)
		}
	}
	e.mx.Lock()
	defer e.mx.Unlock()
	e.conventions[family] = name
	e.initCaches()
	return nil
}

// Convention returns the active convention name for one family; the
// empty string means the identity transform.
func (e *Engine) Convention(family ConventionFamily) string {
	e.mx.RLock()
	defer e.mx.RUnlock()
	return e.conventions[family]
}

func lookupConvention(name string) (ConventionFamily, bool) {
	for n, fam := range implementedConventions {
		if strings.EqualFold(n, name) {
			return fam, true
		}
	}
	return "", false
}

// applyConvention shifts a raw substance bundle onto the engine's active
// reference-state conventions. The solvent is subject to the
// water-properties family, every other substance to the
// apparent-properties family. Unmatched names are the identity.
func (e *Engine) applyConvention(pref ThermoPreferences, tps ThermoPropertiesSubstance) (ThermoPropertiesSubstance, error) {
	e.mx.RLock()
	water := e.conventions[WaterProperties]
	apparent := e.conventions[ApparentProperties]
	e.mx.RUnlock()

	if pref.IsAqueousSolvent {
		if strings.EqualFold(water, ConventionSteamTables) {
			toSteamTables(&tps)
		}
		return tps, nil
	}
	if strings.EqualFold(apparent, ConventionBermanBrown) {
		if err := toBermanBrown(&tps, pref.Substance); err != nil {
			return tps, err
		}
	}
	return tps, nil
}

// toSteamTables subtracts the triple-point reference offsets so that the
// solvent's properties follow the steam-tables convention.
func toSteamTables(tps *ThermoPropertiesSubstance) {
	tps.GibbsEnergy.Val -= steamTablesGibbs
	tps.Enthalpy.Val -= steamTablesEnthalpy
	tps.Entropy.Val -= steamTablesEntropy
	tps.HelmholtzEnergy.Val -= steamTablesHelmholtz
	tps.InternalEnergy.Val -= steamTablesInternal
}

// toBermanBrown subtracts Tr times the elemental entropy of the
// substance's formula from the Gibbs energy and enthalpy, shifting them
// from the Benson-Helgeson to the Berman-Brown apparent-properties
// convention.
func toBermanBrown(tps *ThermoPropertiesSubstance, s *Substance) error {
	entropy, err := ElementalEntropy(s.Formula)
	if err != nil {
		return fmt.Errorf("thermofun: Berman-Brown conversion of %q: %w", s.Symbol, err)
	}
	tps.GibbsEnergy.Val -= s.ReferenceT * entropy
	tps.Enthalpy.Val -= s.ReferenceT * entropy
	return nil
}
