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
	"fmt"
	"io"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
)

// dumpState writes the registers of i and the instruction at PC.
func dumpState(i *vm.Instance, w io.Writer) error {
	ew := errw.New(w)
	fmt.Fprintf(ew, "PC: %d, RB: %d, instructions: %d\n", i.PC, i.RB, i.InstructionCount())
	fmt.Fprintf(ew, "% 10d\t", i.PC)
	asm.Disassemble(i.Mem.Fetch(i.PC, 4), 0, ew)
	ew.Write([]byte{'\n'})
	return ew.Err
}

// maxGap is the largest run of unset cells allowed in the dense part of a
// memory dump.
const maxGap = 1024

// dumpVM dumps the machine registers and memory to the specified io.Writer.
// Memory from address 0 is written in program text format and can be loaded
// back as a program. Cells set far past the end of that image are then written
// one per line as "address: value".
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := errw.New(w)
	dumpState(i, ew)
	addrs := i.Mem.Addrs()
	var end vm.Cell
	k := 0
	for ; k < len(addrs) && addrs[k] < end+maxGap; k++ {
		end = addrs[k] + 1
	}
	vm.Write(ew, i.Mem.Slice(0, end))
	for _, a := range addrs[k:] {
		v, _ := i.Mem.Read(a)
		fmt.Fprintf(ew, "%d: %d\n", a, v)
	}
	return ew.Err
}
