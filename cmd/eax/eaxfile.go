package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const eaxFileName = ".eax"

// eaxDefaults holds listing defaults. Nil fields are unset.
type eaxDefaults struct {
	All      *bool    `yaml:"all"`
	Long     *bool    `yaml:"long"`
	Oneline  *bool    `yaml:"oneline"`
	Bytes    *bool    `yaml:"bytes"`
	Group    *bool    `yaml:"group"`
	Modified *bool    `yaml:"modified"`
	Reverse  *bool    `yaml:"reverse"`
	Sort     *string  `yaml:"sort"`
	Color    *string  `yaml:"color"`
	Ignore   []string `yaml:"ignore"`
}

type eaxFile struct {
	Defaults eaxDefaults            `yaml:",inline"`
	Profiles map[string]eaxDefaults `yaml:"profiles"`
}

// readEaxFile reads the defaults at path with the named profile (or the
// "default" profile) layered on top. A missing or empty file yields empty
// defaults.
func readEaxFile(path string, profile string) (*eaxDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &eaxDefaults{}, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return &eaxDefaults{}, nil
	}

	var cfg eaxFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	defaults := cfg.Defaults
	if prof, ok := cfg.Profiles[profile]; ok {
		defaults.merge(&prof)
	} else if prof, ok := cfg.Profiles["default"]; ok {
		defaults.merge(&prof)
	}

	if defaults.Color != nil {
		if _, ok := normalizeColorMode(*defaults.Color); !ok {
			return nil, fmt.Errorf("invalid color value %q in %s (expected auto, always, or never)", *defaults.Color, path)
		}
	}
	return &defaults, nil
}

// merge overlays the set fields of o onto d. Ignore patterns accumulate.
func (d *eaxDefaults) merge(o *eaxDefaults) {
	if o == nil {
		return
	}
	for _, pair := range []struct{ dst, src **bool }{
		{&d.All, &o.All},
		{&d.Long, &o.Long},
		{&d.Oneline, &o.Oneline},
		{&d.Bytes, &o.Bytes},
		{&d.Group, &o.Group},
		{&d.Modified, &o.Modified},
		{&d.Reverse, &o.Reverse},
	} {
		if *pair.src != nil {
			*pair.dst = *pair.src
		}
	}
	if o.Sort != nil {
		d.Sort = o.Sort
	}
	if o.Color != nil {
		d.Color = o.Color
	}
	d.Ignore = append(d.Ignore, o.Ignore...)
}

func defaultEaxFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, eaxFileName), nil
}

// loadDefaults reads ~/.eax and then dir/.eax; the directory file wins.
func loadDefaults(dir string, profile string) (*eaxDefaults, error) {
	defaults := &eaxDefaults{}
	if homePath, err := defaultEaxFilePath(); err == nil {
		home, err := readEaxFile(homePath, profile)
		if err != nil {
			return nil, err
		}
		defaults.merge(home)
	}

	local, err := readEaxFile(filepath.Join(dir, eaxFileName), profile)
	if err != nil {
		return nil, err
	}
	defaults.merge(local)
	return defaults, nil
}

type flagSetter interface {
	Changed(name string) bool
	Set(name, value string) error
}

// applyDefaults sets every flag the user did not pass explicitly from d.
func applyDefaults(flags flagSetter, d *eaxDefaults) error {
	values := map[string]string{}
	for name, v := range map[string]*bool{
		"all":      d.All,
		"long":     d.Long,
		"oneline":  d.Oneline,
		"bytes":    d.Bytes,
		"group":    d.Group,
		"modified": d.Modified,
		"reverse":  d.Reverse,
	} {
		if v != nil {
			values[name] = strconv.FormatBool(*v)
		}
	}
	if d.Sort != nil {
		values["sort"] = *d.Sort
	}
	if d.Color != nil {
		values["color"] = *d.Color
	}

	for name, value := range values {
		if flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("failed to apply default %s=%s: %w", name, value, err)
		}
	}
	return nil
}
