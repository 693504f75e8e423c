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

// State is the reason why Run returned.
type State int

// Execution states reported in an Outcome.
const (
	Halted State = iota
	NeedInput
	Output
)

func (s State) String() string {
	switch s {
	case Halted:
		return "halted"
	case NeedInput:
		return "need input"
	case Output:
		return "output"
	}
	return "state" + strconv.Itoa(int(s))
}

// Outcome is returned by Run. Value is only meaningful if State is Output.
type Outcome struct {
	State State
	Value Cell
}

func (o Outcome) String() string {
	if o.State == Output {
		return "output(" + strconv.FormatInt(int64(o.Value), 10) + ")"
	}
	return o.State.String()
}

// PushInput appends the given values to the tail of the input queue. Values
// are consumed by input instructions in the order they were pushed.
func (i *Instance) PushInput(values ...Cell) {
	i.input = append(i.input, values...)
}

// Pending returns the number of values waiting in the input queue.
func (i *Instance) Pending() int {
	return len(i.input)
}

func (i *Instance) popInput() (v Cell, ok bool) {
	if len(i.input) == 0 {
		return 0, false
	}
	v = i.input[0]
	i.input = i.input[1:]
	return v, true
}
