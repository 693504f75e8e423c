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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm		params	description
//	------	---		------	-------------------------------------------------
//	1	add		a b d	store a+b at d
//	2	mul		a b d	store a*b at d
//	3	in		d	store the next input value at d
//	4	out		a	output a
//	5	jt, jnz		a t	jump to t if a != 0
//	6	jf, jz		a t	jump to t if a == 0
//	7	lt		a b d	store 1 at d if a < b, 0 otherwise
//	8	eq		a b d	store 1 at d if a == b, 0 otherwise
//	9	arb, rb		a	add a to the relative base
//	99	hlt, halt		halt
//
// Parameters:
//
// Parameter modes are selected with a prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	~42	relative mode: the value at address RB+42
//
// The value part of a parameter can be an integer literal, a character literal,
// a constant or a label. Write parameters (d above) cannot use immediate mode.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not )
//
// Literals and label/const identifiers:
//
// Input is split at white space into tokens. A token that can be converted to
// a Go integer (see strconv.ParseInt) is an integer literal. A Go character
// literal between single quotes is converted to the corresponding integer
// literal. The name of a defined constant is replaced by the constant's value
// and can be used anywhere an integer literal is expected. Anything else is a
// label name.
//
// Where an instruction is expected, integer literals, character literals,
// constants and label names are compiled as raw data, just like .dat.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// parameter value or data. Forward references are ok:
//
//	jt #1 #loop	( jump to loop )
//	out count	( output the value at address count )
//	...
//	:count .dat 0
//	:loop
//
// Directives:
//
//	.org 100	set the compilation address to 100
//	.dat 42		compile the value 42
//	.equ FOO 42	define constant FOO with value 42
package asm
