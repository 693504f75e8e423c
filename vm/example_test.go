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

package vm_test

import (
	"fmt"

	"github.com/db47h/intcode/vm"
)

// Shows the basic host loop: feed inputs on NeedInput, consume outputs until
// the program halts.
func ExampleInstance_Run() {
	// read a number and output it twice
	prog, err := vm.ParseString("3,9,4,9,4,9,99,0,0,0")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(prog)
	if err != nil {
		panic(err)
	}
	for {
		o, err := i.Run()
		if err != nil {
			panic(err)
		}
		switch o.State {
		case vm.NeedInput:
			fmt.Println("need input")
			i.PushInput(21)
			continue
		case vm.Output:
			fmt.Println(o.Value)
			continue
		}
		break
	}
	fmt.Println(i.Halted())

	// Output:
	// need input
	// 21
	// 21
	// true
}

// Two machines connected back to back: the output of the first one is the
// input of the second.
func ExampleInstance_PushInput() {
	double := []vm.Cell{3, 9, 1002, 9, 2, 9, 4, 9, 99, 0}
	a, _ := vm.New(double, vm.Input(5))
	b, _ := vm.New(double)

	o, _ := a.Run()
	b.PushInput(o.Value)
	o, _ = b.Run()
	fmt.Println(o)

	// Output:
	// output(20)
}
