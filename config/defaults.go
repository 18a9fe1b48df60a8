package config

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

func isAllowedOverrideType(existing interface{}, v interface{}) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map:
		return false
	case reflect.Array, reflect.Slice:
		// only override with an array if it has a length
		return reflect.ValueOf(v).Len() > 0
	case reflect.Int, reflect.Bool, reflect.String:
		// enable overriding with "", 0, false
		// warning: config objects should always use "omitempty" or _all_ fields will get overwritten
		return true
	}
	// don't overwrite with zero values or many things will get overwritten
	return !reflect.ValueOf(v).IsZero()
}

func isMap(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

func recursiveOverride(defaults map[string]interface{}, overrides map[string]interface{}) {
	for key, val := range overrides {
		existingVal, ok := defaults[key]
		if !ok {
			defaults[key] = val
			continue
		}
		if isMap(existingVal) && isMap(val) {
			existingMap, ok := existingVal.(map[string]interface{})
			if !ok {
				panic(fmt.Sprintf("unknown map: %T", existingVal))
			}
			recursiveOverride(existingMap, val.(map[string]interface{}))
		} else if isAllowedOverrideType(existingVal, val) {
			defaults[key] = val
		}
	}
}

// ApplyDefaults merges an override configuration on top of a default one,
// writing the result into newCfg.  Both are round-tripped through yaml so
// only set fields override.
func ApplyDefaults(defaultCfg interface{}, overrideCfg interface{}, newCfg interface{}) error {
	bz, err := yaml.Marshal(defaultCfg)
	if err != nil {
		return err
	}
	defaults := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &defaults); err != nil {
		return err
	}

	bz, err = yaml.Marshal(overrideCfg)
	if err != nil {
		return err
	}
	overrides := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &overrides); err != nil {
		return err
	}

	recursiveOverride(defaults, overrides)

	bz, err = yaml.Marshal(defaults)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, newCfg)
}
