package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/c9s/tacore/pkg/ta"
)

const (
	keyCheckStructure = "checkStructure"
	keyCheckNaN       = "checkNaN"
	keyFillNaN        = "fillNaN"
)

var envNames = map[string]string{
	keyCheckStructure: "TA_CHECK_STRUCTURE",
	keyCheckNaN:       "TA_CHECK_NAN",
	keyFillNaN:        "TA_FILL_NAN",
}

func field(cfg *ta.Config, key string) *bool {
	switch key {
	case keyCheckStructure:
		return &cfg.CheckStructure
	case keyCheckNaN:
		return &cfg.CheckNaN
	case keyFillNaN:
		return &cfg.FillNaN
	}
	return nil
}

// applyViper overwrites the fields of cfg whose key is set in v. prefix is
// prepended to each key, e.g. "ta." for a nested section.
func applyViper(v *viper.Viper, prefix string, cfg ta.Config) (ta.Config, error) {
	for _, key := range []string{keyCheckStructure, keyCheckNaN, keyFillNaN} {
		name := prefix + key
		if !v.IsSet(name) {
			continue
		}

		b, err := cast.ToBoolE(v.Get(name))
		if err != nil {
			return cfg, errors.Wrapf(err, "can not parse %q as bool", name)
		}

		*field(&cfg, key) = b
	}

	return cfg, nil
}

// LoadFromViper reads the "ta" section from v, which may be backed by a
// config file, flags or the environment. Unset keys keep their
// ta.DefaultConfig value.
func LoadFromViper(v *viper.Viper) (ta.Config, error) {
	return applyViper(v, Section+".", ta.DefaultConfig)
}

func overlayEnv(cfg ta.Config) (ta.Config, error) {
	v := viper.New()
	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return cfg, errors.Wrapf(err, "bind env %s", env)
		}
	}

	return applyViper(v, "", cfg)
}

// FromEnv returns ta.DefaultConfig with the TA_CHECK_STRUCTURE, TA_CHECK_NAN
// and TA_FILL_NAN overrides applied.
func FromEnv() (ta.Config, error) {
	return overlayEnv(ta.DefaultConfig)
}
