package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable read by ApplyEnv.
const EnvPrefix = "CELLEDIT_"

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

type envSetter func(cfg *Config, value string) error

// envMapping maps environment variables to settings.
var envMapping = map[string]envSetter{
	EnvPrefix + "AUTO_PAIR": func(c *Config, v string) error {
		return parseBool(v, &c.Editor.AutoPair)
	},
	EnvPrefix + "MATCH_BRACKETS": func(c *Config, v string) error {
		return parseBool(v, &c.Editor.MatchBrackets)
	},
	EnvPrefix + "TAB_WIDTH": func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		c.Editor.TabWidth = n
		return nil
	},
	EnvPrefix + "TERMINATORS": func(c *Config, v string) error {
		c.Editor.Terminators = v
		return nil
	},
	EnvPrefix + "CLIPBOARD": func(c *Config, v string) error {
		c.Clipboard.Backend = strings.ToLower(strings.TrimSpace(v))
		return nil
	},
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
		return nil
	},
	EnvPrefix + "LOG_FILE": func(c *Config, v string) error {
		c.Log.File = v
		return nil
	},
}

// EnvVars returns the names of the environment variables ApplyEnv reads.
func EnvVars() []string {
	return slices.Sorted(maps.Keys(envMapping))
}

// ApplyEnv overrides cfg with the environment variables found by lookup.
// Variables that fail to parse are reported together; the others are
// still applied.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	var errs []error
	for name, set := range envMapping {
		val, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, val); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, name, val, err))
		}
	}
	return errors.Join(errs...)
}

// parseBool accepts the spellings used in shell environments.
func parseBool(s string, dst *bool) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return fmt.Errorf("not a boolean")
	}
	return nil
}
