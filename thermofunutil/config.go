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

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// InitFlags creates the configuration flags on the given flag sets and
// binds them to Cfg. rootSet receives the flags every subcommand
// shares; calcSet receives the calculation flags.
func InitFlags(rootSet, calcSet *pflag.FlagSet) {
	// Options are the configuration options available to ThermoFun.
	options := []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagset                *pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagset:    rootSet,
		},
		{
			name: "Database",
			usage: `
              Database is the path of the JSON substance and reaction
              database to evaluate records from.`,
			defaultVal: "",
			flagset:    calcSet,
		},
		{
			name: "Solvent",
			usage: `
              Solvent is the symbol of the aqueous-solvent record used for
              water-dependent models and conventions.`,
			defaultVal: "",
			flagset:    calcSet,
		},
		{
			name: "ApparentConvention",
			usage: `
              ApparentConvention names the convention for the apparent
              properties of formation, either Benson-Helgeson or
              Berman-Brown.`,
			defaultVal: "",
			flagset:    calcSet,
		},
		{
			name: "WaterConvention",
			usage: `
              WaterConvention names the scale for solvent water properties.
              Steam-tables reports them relative to the triple point.`,
			defaultVal: "",
			flagset:    calcSet,
		},
		{
			name: "Symbols",
			usage: `
              Symbols lists the substance records to evaluate.`,
			defaultVal: []string{},
			flagset:    calcSet,
		},
		{
			name: "Temperatures",
			usage: `
              Temperatures lists the temperatures [K] of the calculation
              grid.`,
			defaultVal: []string{"298.15"},
			flagset:    calcSet,
		},
		{
			name: "Pressures",
			usage: `
              Pressures lists the pressures [bar] of the calculation grid.`,
			defaultVal: []string{"1"},
			flagset:    calcSet,
		},
		{
			name: "Output",
			usage: `
              Output is the path the CSV property table is written to.
              If empty, the table goes to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagset:    calcSet,
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("THERMOFUN")

	for _, option := range options {
		switch option.defaultVal.(type) {
		case string:
			if option.shorthand == "" {
				option.flagset.String(option.name, option.defaultVal.(string), option.usage)
			} else {
				option.flagset.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
			}
		case []string:
			if option.shorthand == "" {
				option.flagset.StringSlice(option.name, option.defaultVal.([]string), option.usage)
			} else {
				option.flagset.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
			}
		default:
			panic("invalid argument type")
		}
		Cfg.BindPFlag(option.name, option.flagset.Lookup(option.name))
	}
}

// SetConfig finds and reads in the configuration file, if there is one.
func SetConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("thermofun: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// BatchFromCfg assembles a batch description from the configuration.
func BatchFromCfg(cfg *viper.Viper) (*Batch, error) {
	temperatures, err := toFloatSlice(cfg.Get("Temperatures"))
	if err != nil {
		return nil, fmt.Errorf("thermofun: parsing Temperatures: %v", err)
	}
	pressures, err := toFloatSlice(cfg.Get("Pressures"))
	if err != nil {
		return nil, fmt.Errorf("thermofun: parsing Pressures: %v", err)
	}
	return &Batch{
		Database:           cfg.GetString("Database"),
		Solvent:            cfg.GetString("Solvent"),
		ApparentConvention: cfg.GetString("ApparentConvention"),
		WaterConvention:    cfg.GetString("WaterConvention"),
		Symbols:            cfg.GetStringSlice("Symbols"),
		Temperatures:       temperatures,
		Pressures:          pressures,
		Output:             cfg.GetString("Output"),
	}, nil
}

// toFloatSlice converts a configuration value holding a list of numbers
// or numeric strings into a float64 slice.
func toFloatSlice(val interface{}) ([]float64, error) {
	items, err := cast.ToSliceE(val)
	if err != nil {
		s, err := cast.ToStringSliceE(val)
		if err != nil {
			return nil, err
		}
		items = make([]interface{}, len(s))
		for i, v := range s {
			items[i] = v
		}
	}
	o := make([]float64, len(items))
	for i, item := range items {
		v, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, err
		}
		o[i] = v
	}
	return o, nil
}
