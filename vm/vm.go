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

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       Cell    // Program Counter (aka. Instruction Pointer)
	RB       Cell    // Relative Base
	Mem      *Memory // Memory
	input    []Cell
	insCount int64
	limit    int64
	halted   bool
	fault    error
	trace    TraceFunc
}

// Option interface
type Option func(*Instance) error

// TraceFunc is the function prototype for instruction tracing hooks. It is
// called before each instruction is executed, with the PC pointing to the
// instruction.
type TraceFunc func(i *Instance, ins Instruction)

// Input pushes the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.PushInput(values...); return nil }
}

// Trace sets the instruction tracing hook. A nil hook disables tracing.
func Trace(fn TraceFunc) Option {
	return func(i *Instance) error {
		i.trace = fn
		return nil
	}
}

// StepLimit sets the maximum number of instructions executed since the last
// Reset. Once the limit is reached, Run returns ErrStepLimit without changing
// the VM state; raising the limit with SetOptions allows to resume execution.
// A limit <= 0 means no limit, which is the default.
func StepLimit(n int64) Option {
	return func(i *Instance) error {
		i.limit = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance and loads the given
// program into it. The program may be nil, in which case the instance is
// created empty and a program can be loaded later with Load.
//
// Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{Mem: NewMemory(program)}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Load writes program to memory at addresses 0 to len(program)-1. It does not
// clear memory nor reset the VM registers; use Reset for that.
func (i *Instance) Load(program []Cell) {
	i.Mem.load(program)
}

// Reset clears memory, registers and the input queue so that the instance can
// be reused for a new program. Options like the trace hook or step limit are
// preserved.
func (i *Instance) Reset() {
	i.Mem.clear()
	i.PC = 0
	i.RB = 0
	i.input = i.input[:0]
	i.insCount = 0
	i.halted = false
	i.fault = nil
}

// Halted returns true if the instance has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed since the
// last Reset.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
