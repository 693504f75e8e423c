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

// Package vm implements the Intcode virtual machine.
//
// An Instance holds a sparse memory of 64 bits cells, an instruction pointer
// (PC), a relative base register (RB) and a queue of pending inputs. Programs
// are loaded at address 0 and executed by calling Run, which returns control to
// the caller whenever one of the following happens:
//
//	Halted		the program executed opcode 99
//	NeedInput	opcode 3 was reached with an empty input queue
//	Output		opcode 4 produced a value
//
// On NeedInput, the PC still points to the input instruction, so that pushing
// a value with PushInput and calling Run again will retry the same
// instruction. On Output, the PC has already been moved past the output
// instruction.
//
// The VM never blocks and never starts goroutines. Running several machines
// together (pipelines, feedback loops) is the job of the caller, which simply
// forwards the Output of one Instance to the PushInput of another. See package
// github.com/db47h/intcode/host for ready made drivers.
//
// Fatal conditions are reported as errors: *AddressError for negative
// addresses, *OpcodeError for unknown opcodes, *ModeError for invalid parameter
// modes and ErrHalted when Run is called on a machine that already halted.
// Use errors.Cause from github.com/pkg/errors to get to the underlying type of
// wrapped errors.
package vm
