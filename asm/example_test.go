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

package asm_test

import (
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
)

// Shows the assembler syntax and the disassembly of the resulting program.
func ExampleAssemble() {
	code := `
		( count down from the input value to 1 )
		.equ ZERO 0
		in n
:loop	out n
		add n #-1 n
		jnz n #loop
		out ~ZERO	( relative mode, reads address RB+0 )
		hlt
:n		.dat 'A'
		42		( implicit .dat )
`

	prog, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		panic(err)
	}

	asm.DisassembleAll(prog, os.Stdout)

	// Output:
	//          0	in 14
	//          2	out 14
	//          4	add 14 #-1 14
	//          8	jt 14 #2
	//         11	out ~0
	//         13	hlt
	//         14	.dat 65
	//         15	.dat 42
}
