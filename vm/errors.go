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

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrHalted is returned by Run when called on an instance that has already
// halted.
var ErrHalted = errors.New("machine halted")

// ErrStepLimit is returned by Run when the limit set with the StepLimit option
// is reached. It is not fatal.
var ErrStepLimit = errors.New("step limit reached")

// AddressError is returned when a negative memory address is read or
// written.
type AddressError struct {
	Addr Cell
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %d", e.Addr)
}

// OpcodeError is returned when the VM encounters an unknown opcode.
type OpcodeError struct {
	PC   Cell
	Word Cell
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %d (%d) @pc=%d", Decode(e.Word).Op, e.Word, e.PC)
}

// ModeError is returned for parameter modes other than 0, 1 or 2, and for
// write parameters in immediate mode.
type ModeError struct {
	PC    Cell
	Word  Cell
	Param int
	Mode  Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid %v for parameter %d of %v (%d) @pc=%d", e.Mode, e.Param+1, Decode(e.Word).Op, e.Word, e.PC)
}
