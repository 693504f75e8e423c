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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runFile = `
program = "day07.txt"
steps = 1000000

[run]
input = [1, -2]
lines = ["NOT A J", "WALK"]
ascii = true

[ring]
phases = [9, 8, 7, 6, 5]
signal = 3

[log]
verbosity = 2
`

func TestParse(t *testing.T) {
	c, err := config.Parse(runFile)
	require.NoError(t, err)
	assert.Equal(t, "day07.txt", c.Program)
	assert.EqualValues(t, 1000000, c.Steps)
	assert.Equal(t, []vm.Cell{1, -2}, c.Run.Input)
	assert.Equal(t, []string{"NOT A J", "WALK"}, c.Run.Lines)
	assert.True(t, c.Run.ASCII)
	assert.False(t, c.Run.Dump)
	assert.Equal(t, []vm.Cell{9, 8, 7, 6, 5}, c.Ring.Phases)
	assert.EqualValues(t, 3, c.Ring.Signal)
	assert.True(t, c.Ring.Feedback, "feedback defaults to true")
	assert.Equal(t, 2, c.Log.Verbosity)
}

func TestParse_feedback(t *testing.T) {
	c, err := config.Parse("[ring]\nfeedback = false\n")
	require.NoError(t, err)
	assert.False(t, c.Ring.Feedback)
}

func TestParse_errors(t *testing.T) {
	_, err := config.Parse("program = 42\n")
	assert.Error(t, err)

	_, err = config.Parse("progam = \"x\"\n[run]\ninptu = [1]\n")
	require.Error(t, err)
	assert.Equal(t, "unknown keys: progam, run.inptu", err.Error())
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))

	c, err := config.FindAndLoad(sub)
	require.NoError(t, err)
	if c != nil {
		// a run file in one of the parents of the temp dir
		t.Skip("found unrelated run file in", c.Dir)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultName), []byte(runFile), 0644))
	c, err = config.FindAndLoad(sub)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, filepath.Join(dir, "day07.txt"), c.ProgramPath())

	c.Program = "/abs/prog.txt"
	assert.Equal(t, "/abs/prog.txt", c.ProgramPath())
}

func TestLoad_missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
