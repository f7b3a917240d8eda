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

// Package thermofunutil provides the configuration layer and batch
// runner behind the thermofun command-line interface.
package thermofunutil

import (
	"github.com/thermomod/thermofun"
	"github.com/thermomod/thermofun/science/eos/cpint"
	"github.com/thermomod/thermofun/science/pressure/simplevol"
	"github.com/thermomod/thermofun/science/reaction/logk"
	"github.com/thermomod/thermofun/science/water/simplewater"
)

// DefaultModels returns a model library with every model shipped in the
// science directory registered under its conventional tag.
func DefaultModels() *thermofun.ModelLibrary {
	lib := thermofun.NewModelLibrary()

	lib.RegisterSubstanceEOS(cpint.Method, cpint.Model{})
	lib.RegisterSubstancePCorr(simplevol.MethodConstantVolume, simplevol.ConstantVolume{})
	lib.RegisterSubstancePCorr(thermofun.PCorrMethodIdealGas, simplevol.IdealGas{})

	lib.RegisterSolventThermo(simplewater.Method, simplewater.Model{})
	lib.RegisterSolventPVT(simplewater.Method, simplewater.Model{})
	lib.RegisterSolventElectro(simplewater.ElectroMethod, simplewater.Electro{})

	lib.RegisterReactionModel(logk.MethodPolynomial, logk.Polynomial{})
	lib.RegisterReactionModel(logk.MethodMarshallFranck, logk.MarshallFranck{})
	lib.RegisterReactionCorrection(logk.MethodVolumePolynomial, logk.VolumePolynomial{})
	lib.RegisterReactionCorrection(logk.MethodConstantVolume, logk.ConstantVolume{})

	return lib
}
