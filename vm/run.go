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

import "github.com/pkg/errors"

// param returns the value of parameter n of the instruction at PC.
func (i *Instance) param(word Cell, ins Instruction, n int) (Cell, error) {
	lit, err := i.Mem.Read(i.PC + Cell(n) + 1)
	if err != nil {
		return 0, err
	}
	switch ins.Modes[n] {
	case ModePosition:
		return i.Mem.Read(lit)
	case ModeImmediate:
		return lit, nil
	case ModeRelative:
		return i.Mem.Read(i.RB + lit)
	}
	return 0, &ModeError{PC: i.PC, Word: word, Param: n, Mode: ins.Modes[n]}
}

// dst returns the target address of write parameter n of the instruction at
// PC.
func (i *Instance) dst(word Cell, ins Instruction, n int) (Cell, error) {
	lit, err := i.Mem.Read(i.PC + Cell(n) + 1)
	if err != nil {
		return 0, err
	}
	switch ins.Modes[n] {
	case ModePosition:
		return lit, nil
	case ModeRelative:
		return i.RB + lit, nil
	}
	return 0, &ModeError{PC: i.PC, Word: word, Param: n, Mode: ins.Modes[n]}
}

// fail marks the instance as faulted. Address errors get the faulting
// instruction location attached.
func (i *Instance) fail(err error, ins Instruction) (Outcome, error) {
	if _, ok := err.(*AddressError); ok {
		err = errors.Wrapf(err, "%v @pc=%d", ins.Op, i.PC)
	}
	i.fault = err
	return Outcome{}, err
}

// Run starts or resumes execution of the VM until it halts, needs input or
// produces an output.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. Errors are fatal: calling Run again will return the same error, with
// the exception of ErrStepLimit. Calling Run after it has returned Halted yields
// ErrHalted.
func (i *Instance) Run() (Outcome, error) {
	if i.fault != nil {
		return Outcome{}, i.fault
	}
	if i.halted {
		return Outcome{State: Halted}, ErrHalted
	}
	for {
		if i.limit > 0 && i.insCount >= i.limit {
			return Outcome{}, ErrStepLimit
		}
		word, err := i.Mem.Read(i.PC)
		if err != nil {
			return i.fail(err, Instruction{})
		}
		ins := Decode(word)
		if i.trace != nil {
			i.trace(i, ins)
		}
		switch ins.Op {
		case OpAdd, OpMul, OpLt, OpEq:
			a, err := i.param(word, ins, 0)
			if err != nil {
				return i.fail(err, ins)
			}
			b, err := i.param(word, ins, 1)
			if err != nil {
				return i.fail(err, ins)
			}
			addr, err := i.dst(word, ins, 2)
			if err != nil {
				return i.fail(err, ins)
			}
			var v Cell
			switch ins.Op {
			case OpAdd:
				v = a + b
			case OpMul:
				v = a * b
			case OpLt:
				if a < b {
					v = 1
				}
			case OpEq:
				if a == b {
					v = 1
				}
			}
			if err = i.Mem.Write(addr, v); err != nil {
				return i.fail(err, ins)
			}
			i.PC += 4
		case OpIn:
			addr, err := i.dst(word, ins, 0)
			if err != nil {
				return i.fail(err, ins)
			}
			v, ok := i.popInput()
			if !ok {
				// PC left on the input instruction so that it is retried.
				return Outcome{State: NeedInput}, nil
			}
			if err = i.Mem.Write(addr, v); err != nil {
				return i.fail(err, ins)
			}
			i.PC += 2
		case OpOut:
			v, err := i.param(word, ins, 0)
			if err != nil {
				return i.fail(err, ins)
			}
			i.PC += 2
			i.insCount++
			return Outcome{State: Output, Value: v}, nil
		case OpJt, OpJf:
			a, err := i.param(word, ins, 0)
			if err != nil {
				return i.fail(err, ins)
			}
			target, err := i.param(word, ins, 1)
			if err != nil {
				return i.fail(err, ins)
			}
			if (a != 0) == (ins.Op == OpJt) {
				if target < 0 {
					return i.fail(&AddressError{Addr: target}, ins)
				}
				i.PC = target
			} else {
				i.PC += 3
			}
		case OpArb:
			a, err := i.param(word, ins, 0)
			if err != nil {
				return i.fail(err, ins)
			}
			i.RB += a
			i.PC += 2
		case OpHlt:
			i.halted = true
			i.insCount++
			return Outcome{State: Halted}, nil
		default:
			return i.fail(&OpcodeError{PC: i.PC, Word: word}, ins)
		}
		i.insCount++
	}
}
