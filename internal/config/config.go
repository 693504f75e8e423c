// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config handles intcode.toml run files. A run file names a program
// and the parameters of the run and ring commands so that they need not be
// repeated on the command line.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// DefaultName is the name of the run file looked up by FindAndLoad.
const DefaultName = "intcode.toml"

// Config represents an intcode.toml run file.
type Config struct {
	Program string `toml:"program"`
	// Steps is the instruction budget of each machine. No limit if <= 0.
	Steps int64 `toml:"steps"`
	Run   Run   `toml:"run"`
	Ring  Ring  `toml:"ring"`
	Log   Log   `toml:"log"`

	// Dir is the directory containing the run file (set at load time).
	Dir string `toml:"-"`
}

// Run configures the run command.
type Run struct {
	Input []vm.Cell `toml:"input"`
	// Lines are sent as ASCII input after Input.
	Lines []string `toml:"lines"`
	ASCII bool     `toml:"ascii"`
	Dump  bool     `toml:"dump"`
}

// Ring configures the ring command.
type Ring struct {
	Phases   []vm.Cell `toml:"phases"`
	Signal   vm.Cell   `toml:"signal"`
	Feedback bool      `toml:"feedback"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Parse parses a run file. Unknown keys are reported as errors.
func Parse(data string) (*Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, err
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for n, k := range u {
			keys[n] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	// Defaults
	if !md.IsDefined("ring", "feedback") {
		c.Ring.Feedback = true
	}
	return &c, nil
}

// Load loads the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read run file")
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", path)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find an intcode.toml file, then loads
// and returns it. Returns nil if no run file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", startDir)
	}
	for {
		path := filepath.Join(dir, DefaultName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// ProgramPath returns the path of the program file. Relative paths are
// resolved against the directory of the run file.
func (c *Config) ProgramPath() string {
	if c.Program == "" || filepath.IsAbs(c.Program) || c.Dir == "" {
		return c.Program
	}
	return filepath.Join(c.Dir, c.Program)
}
