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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// mnemonics and aliases. The first entry is used by the disassembler.
var opcodes = map[vm.Opcode][]string{
	vm.OpAdd: {"add"},
	vm.OpMul: {"mul"},
	vm.OpIn:  {"in"},
	vm.OpOut: {"out"},
	vm.OpJt:  {"jt", "jnz"},
	vm.OpJf:  {"jf", "jz"},
	vm.OpLt:  {"lt"},
	vm.OpEq:  {"eq"},
	vm.OpArb: {"arb", "rb"},
	vm.OpHlt: {"hlt", "halt"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = op
		}
	}
}

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

// Error is a single assembler error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	s := make([]string, len(e))
	for i := range e {
		s[i] = e[i].Error()
	}
	return strings.Join(s, "\n")
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (prog []vm.Cell, err error) {
	p := newParser()
	if err = p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.i[:p.size], nil
}

func writeParam(w io.Writer, m vm.Mode, v vm.Cell) {
	switch m {
	case vm.ModeImmediate:
		io.WriteString(w, "#")
	case vm.ModeRelative:
		io.WriteString(w, "~")
	case vm.ModePosition:
	default:
		io.WriteString(w, "?")
	}
	io.WriteString(w, strconv.FormatInt(int64(v), 10))
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction are written as a .dat
// directive. If pc is out of the bounds of prog, nothing is written and an
// error is returned.
func Disassemble(prog []vm.Cell, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(prog) {
		return pc, errors.Errorf("disassemble: pc %d out of range [0, %d)", pc, len(prog))
	}
	ew, _ := w.(*errw.ErrWriter)
	if ew == nil {
		ew = errw.New(w)
	}

	word := prog[pc]
	ins := vm.Decode(word)
	n := ins.Op.Params()
	if !ins.Op.Valid() || pc+n >= len(prog) || !validModes(ins) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, opcodes[ins.Op][0])
	for k := 0; k < n; k++ {
		ew.Write([]byte{' '})
		writeParam(ew, ins.Modes[k], prog[pc+1+k])
	}
	return pc + 1 + n, ew.Err
}

func validModes(ins vm.Instruction) bool {
	n := ins.Op.Params()
	for k := 0; k < 3; k++ {
		m := ins.Modes[k]
		switch {
		case k >= n && m != 0:
			return false
		case m > vm.ModeRelative:
			return false
		case k == ins.Op.Dst() && m == vm.ModeImmediate:
			return false
		}
	}
	return true
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. It will return any write error.
func DisassembleAll(prog []vm.Cell, w io.Writer) error {
	ew := errw.New(w)
	for pc := 0; pc < len(prog); {
		fmt.Fprintf(ew, "% 10d\t", pc)
		pc, _ = Disassemble(prog, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
