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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/host"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []vm.Cell

const (
	feedback = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	serial   = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
)

// writeFile writes data to a new file in dir and returns its path.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

// execute runs the intcode command with the given arguments and stdin.
func execute(stdin string, args ...string) (string, error) {
	root, _ := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	echo := writeFile(t, dir, "echo.txt", "3,0,4,0,99\n")
	sum := writeFile(t, dir, "sum.txt", "3,11,3,12,1,11,12,11,4,11,99,0,0")
	chars := writeFile(t, dir, "chars.txt", "3,0,4,0,3,0,4,0,104,1000,99")

	data := []struct {
		name  string
		stdin string
		args  []string
		out   string
	}{
		{"input", "", []string{"run", echo, "-i", "42"}, "42\n"},
		{"stdin", "5, 6\n", []string{"run", sum}, "11\n"},
		{"stdin-split", "5\n\n6", []string{"run", sum}, "11\n"},
		{"eof", "", []string{"run", sum}, ""},
		{"ascii", "", []string{"run", chars, "--ascii", "-l", "a"}, "a\n1000\n"},
		{"ascii-stdin", "b\n", []string{"run", chars, "-a"}, "b\n1000\n"},
		{"numeric", "", []string{"run", chars, "-i", "65,10"}, "65\n10\n1000\n"},
		{"dump", "", []string{"run", writeFile(t, dir, "add.txt", "1101,1,2,5,99,0"), "--dump"},
			"PC: 4, RB: 0, instructions: 2\n         4\thlt\n1101,1,2,5,99,3\n"},
		{"dump-far", "", []string{"run", writeFile(t, dir, "far.txt", "1101,1,1,1099511627776,99"), "--dump"},
			"PC: 4, RB: 0, instructions: 2\n         4\thlt\n1101,1,1,1099511627776,99\n1099511627776: 2\n"},
		{"dump-gap", "", []string{"run", writeFile(t, dir, "gap.txt", "1101,1,1,1000,99"), "--dump"},
			"PC: 4, RB: 0, instructions: 2\n         4\thlt\n1101,1,1,1000,99" + strings.Repeat(",0", 995) + ",2\n"},
		{"trace", "", []string{"run", echo, "-i", "3", "--trace"}, "3\n"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			out, err := execute(d.stdin, d.args...)
			require.NoError(t, err)
			assert.Equal(t, d.out, out)
		})
	}
}

func TestRun_errors(t *testing.T) {
	dir := t.TempDir()
	loop := writeFile(t, dir, "loop.txt", "1105,1,0")

	_, err := execute("", "run", loop, "--steps", "100")
	assert.Equal(t, host.ErrBudget, errors.Cause(err))

	_, err = execute("", "run", writeFile(t, dir, "bad.txt", "104,1,42"))
	assert.IsType(t, (*vm.OpcodeError)(nil), errors.Cause(err))

	_, err = execute("x\n", "run", writeFile(t, dir, "in.txt", "3,0,99"))
	assert.Error(t, err)

	_, err = execute("", "run", loop, "--raw")
	assert.EqualError(t, err, "--raw requires ASCII mode")

	_, err = execute("", "run", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = execute("", "run")
	assert.EqualError(t, err, "no program file")
}

func TestRun_farJump(t *testing.T) {
	dir := t.TempDir()
	jump := writeFile(t, dir, "jump.txt", "1105,1,9223372036854775807")

	_, err := execute("", "run", jump, "--trace")
	assert.IsType(t, (*vm.OpcodeError)(nil), errors.Cause(err))

	// machine state as printed with --debug
	i, err := vm.New(C{1105, 1, 1<<63 - 1})
	require.NoError(t, err)
	_, err = i.Run()
	require.Error(t, err)
	var b bytes.Buffer
	require.NoError(t, dumpState(i, &b))
	assert.Contains(t, b.String(), "PC: 9223372036854775807, RB: 0, instructions: 1\n")
	assert.Contains(t, b.String(), "9223372036854775807\t.dat 0\n")
}

func TestRing(t *testing.T) {
	dir := t.TempDir()
	fb := writeFile(t, dir, "feedback.txt", feedback)
	ser := writeFile(t, dir, "serial.txt", serial)

	out, err := execute("", "ring", fb, "-p", "9,8,7,6,5")
	require.NoError(t, err)
	assert.Equal(t, "139629729\n", out)

	out, err = execute("", "ring", ser, "-p", "4,3,2,1,0", "--feedback=false")
	require.NoError(t, err)
	assert.Equal(t, "43210\n", out)

	out, err = execute("", "ring", ser, "-p", "4,3,2,1,0")
	require.NoError(t, err)
	assert.Equal(t, "43210\n", out)

	_, err = execute("", "ring", ser)
	assert.EqualError(t, err, "no phases")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feedback.txt", feedback)
	writeFile(t, dir, "echo.txt", "3,0,4,0,3,0,4,0,99")
	cfg := writeFile(t, dir, "intcode.toml", `
program = "feedback.txt"

[run]
input = [7, 8]

[ring]
phases = [9, 8, 7, 6, 5]
`)

	out, err := execute("", "--config", cfg, "ring")
	require.NoError(t, err)
	assert.Equal(t, "139629729\n", out)

	// command line arguments take precedence
	out, err = execute("", "--config", cfg, "run", filepath.Join(dir, "echo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "7\n8\n", out)

	out, err = execute("", "--config", cfg, "run", filepath.Join(dir, "echo.txt"), "-i", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)

	_, err = execute("", "--config", filepath.Join(dir, "nope.toml"), "ring")
	assert.Error(t, err)
}

func TestAsm(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "count.ic", `
		( count down from 3 )
		.equ start 3
	:loop
		out n
		add n #-1 n
		jt n #loop
		hlt
	:n	start
	`)
	dst := filepath.Join(dir, "count.txt")

	out, err := execute("", "asm", src)
	require.NoError(t, err)
	assert.Equal(t, "4,10,1001,10,-1,10,1005,10,0,99,3\n", out)

	_, err = execute("", "asm", src, "-o", dst)
	require.NoError(t, err)
	prog, err := vm.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{4, 10, 1001, 10, -1, 10, 1005, 10, 0, 99, 3}, prog)

	out, err = execute("", "run", dst)
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\n", out)

	out, err = execute("", "disasm", dst)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"         0\tout 10",
		"         2\tadd 10 #-1 10",
		"         6\tjt 10 #0",
		"         9\thlt",
		"        10\t.dat 3",
		"",
	}, "\n"), out)

	_, err = execute("", "asm", writeFile(t, dir, "bad.ic", "add 1 2"))
	assert.Error(t, err)
}
