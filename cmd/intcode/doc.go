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

// The intcode command line tool runs, assembles and disassembles Intcode
// programs. It is a showcase for the packages github.com/db47h/intcode/vm,
// github.com/db47h/intcode/asm and github.com/db47h/intcode/host.
//
// Usage:
//
//	intcode [global flags] command [flags] [PROGRAM]
//
// Commands:
//
//	run     run a program
//	ring    run copies of a program wired output to input
//	disasm  disassemble a program
//	asm     assemble source code into a program
//
// Global flags:
//
//	--config file
//		  read run parameters from file
//	-v, --verbose
//		  increase log verbosity (can be repeated)
//	--log file
//		  write log to file instead of stderr
//	--debug
//		  print full error diagnostics
//	--steps int
//		  instruction budget per machine (0 for no limit)
//
// --debug: will print a full stacktrace should a machine crash, along with its
// registers and the instruction at PC.
//
// --steps: abort with an error if a machine executes more than that many
// instructions. Use it for programs that might loop forever.
//
// Run files
//
// Parameters not given on the command line are read from a TOML run file. If
// --config is not specified, intcode looks for a file named intcode.toml in the
// current directory and its parents. Relative program paths are resolved
// against the directory of the run file:
//
//	program = "day09.txt"
//	steps = 10000000
//
//	[run]
//	input = [2]
//	lines = ["NOT A J", "WALK"]
//	ascii = true
//	dump = false
//
//	[ring]
//	phases = [9, 8, 7, 6, 5]
//	signal = 0
//	feedback = true
//
//	[log]
//	verbosity = 1
//	file = "intcode.log"
//
// The run command
//
//	-i, --input values
//		  queue values as input (can be repeated)
//	-l, --line text
//		  queue text as an ASCII input line (can be repeated)
//	-a, --ascii
//		  print output as text and read input lines as text
//	--raw
//		  in ASCII mode, send keystrokes as soon as typed
//	--dump
//		  dump registers and memory image upon exit
//	--trace
//		  log every instruction executed
//
// When the program needs more input than queued, a line is read from stdin.
// In ASCII mode, the line is sent as text, terminated by a new line. Otherwise
// it is parsed as comma or space separated integers. The machine is abandoned
// when stdin reaches end of file.
//
// --raw: switches the terminal to cbreak mode, where every key is sent to the
// program as soon as typed. CTRL-D terminates input.
//
// --dump: prints the machine registers followed by the memory image in program
// text format upon exit. Cells written far past the end of the image are
// listed afterwards, one "address: value" pair per line.
//
// The ring command
//
//	-p, --phases values
//		  engine phases, one engine per phase
//	--signal int
//		  initial signal
//	--feedback
//		  feed the output of the last engine back to the first (default true)
//
// Each engine gets its phase as first input. The first engine gets the initial
// signal when it asks for input, then the output of each engine is sent to the
// next one. Without feedback, engines run one after the other to completion;
// with feedback, the output of the last engine is sent back to the first until
// one of them halts. The last signal is printed.
package main
