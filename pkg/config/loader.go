package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/c9s/tacore/pkg/ta"
)

var log = logrus.WithField("component", "config")

// Section is the top-level key holding the kernel configuration.
const Section = "ta"

type Stash map[string]interface{}

func loadStash(configFile string) (Stash, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	stash := make(Stash)
	if err := yaml.Unmarshal(content, stash); err != nil {
		return nil, errors.Wrapf(err, "yaml parsing error, file: %s", configFile)
	}

	return stash, nil
}

// Load reads the "ta" section of a YAML file. Keys missing from the file
// keep their ta.DefaultConfig value, and a file without the section yields
// ta.DefaultConfig.
func Load(configFile string) (ta.Config, error) {
	stash, err := loadStash(configFile)
	if err != nil {
		return ta.Config{}, err
	}

	return loadSection(stash)
}

func loadSection(stash Stash) (ta.Config, error) {
	cfg := ta.DefaultConfig

	conf, ok := stash[Section]
	if !ok || conf == nil {
		return cfg, nil
	}

	if _, ok := conf.(map[string]interface{}); !ok {
		return cfg, errors.Errorf("%s config should be a map, given: %T %+v", Section, conf, conf)
	}

	if err := reUnmarshal(conf, &cfg); err != nil {
		return ta.DefaultConfig, err
	}

	return cfg, nil
}

// reUnmarshal round-trips conf through JSON into val, so only the keys
// present in conf overwrite val.
func reUnmarshal(conf interface{}, val interface{}) error {
	plain, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plain, val); err != nil {
		return errors.Wrapf(err, "json parsing error, given payload: %s", plain)
	}

	return nil
}

// Resolve loads configFile when it is not empty and applies the TA_*
// environment overrides on top.
func Resolve(configFile string) (ta.Config, error) {
	cfg := ta.DefaultConfig

	if configFile != "" {
		var err error
		if cfg, err = Load(configFile); err != nil {
			return cfg, err
		}
	}

	cfg, err := overlayEnv(cfg)
	if err != nil {
		return cfg, err
	}

	log.WithFields(logrus.Fields{
		"file":           configFile,
		"checkStructure": cfg.CheckStructure,
		"checkNaN":       cfg.CheckNaN,
		"fillNaN":        cfg.FillNaN,
	}).Debug("resolved indicator config")

	return cfg, nil
}
