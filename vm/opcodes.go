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

package vm

import "strconv"

// Opcode is the operation selector held in the two low decimal digits of an
// instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd Opcode = 1
	OpMul Opcode = 2
	OpIn  Opcode = 3
	OpOut Opcode = 4
	OpJt  Opcode = 5
	OpJf  Opcode = 6
	OpLt  Opcode = 7
	OpEq  Opcode = 8
	OpArb Opcode = 9
	OpHlt Opcode = 99
)

type opInfo struct {
	name   string
	params int
	// index of the write parameter, -1 if none
	dst int
}

var opcodes = map[Opcode]opInfo{
	OpAdd: {"add", 3, 2},
	OpMul: {"mul", 3, 2},
	OpIn:  {"in", 1, 0},
	OpOut: {"out", 1, -1},
	OpJt:  {"jt", 2, -1},
	OpJf:  {"jf", 2, -1},
	OpLt:  {"lt", 3, 2},
	OpEq:  {"eq", 3, 2},
	OpArb: {"arb", 1, -1},
	OpHlt: {"hlt", 0, -1},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Params returns the number of parameters of op, or 0 if op is not valid.
func (op Opcode) Params() int {
	return opcodes[op].params
}

// Width returns the width of an instruction in cells, that is the opcode
// itself plus its parameters.
func (op Opcode) Width() Cell {
	return Cell(op.Params()) + 1
}

// Dst returns the index of the parameter written to by op, or -1 if op does
// not write to memory.
func (op Opcode) Dst() int {
	if info, ok := opcodes[op]; ok {
		return info.dst
	}
	return -1
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op" + strconv.FormatInt(int64(op), 10)
}

// Mode is a parameter addressing mode.
type Mode uint8

// Parameter modes.
const (
	ModePosition  Mode = 0
	ModeImmediate Mode = 1
	ModeRelative  Mode = 2
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return "mode" + strconv.Itoa(int(m))
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
// Decode does not check that the opcode or modes are valid.
func Decode(word Cell) Instruction {
	if word < 0 {
		// no modes for negative words, the opcode is invalid anyway.
		return Instruction{Op: Opcode(word % 100)}
	}
	return Instruction{
		Op: Opcode(word % 100),
		Modes: [3]Mode{
			Mode(word / 100 % 10),
			Mode(word / 1000 % 10),
			Mode(word / 10000 % 10),
		},
	}
}

// Encode is the reverse of Decode.
func (ins Instruction) Encode() Cell {
	return Cell(ins.Op) + Cell(ins.Modes[0])*100 + Cell(ins.Modes[1])*1000 + Cell(ins.Modes[2])*10000
}
