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

// Package host provides drivers that run one or more Intcode machines to
// completion: plain batch runs, engines wired in series and engines wired in a
// feedback ring.
package host

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var (
	// ErrStarved is returned when a machine needs input that the driver
	// cannot supply.
	ErrStarved = errors.New("machine starved for input")
	// ErrBudget is returned when a machine exceeds its instruction budget.
	ErrBudget = errors.New("instruction budget exceeded")
)

// limit sets the instruction budget of i. A budget <= 0 means no limit.
func limit(i *vm.Instance, budget int64) error {
	if budget <= 0 {
		return nil
	}
	return i.SetOptions(vm.StepLimit(i.InstructionCount() + budget))
}

func run(i *vm.Instance) (vm.Outcome, error) {
	o, err := i.Run()
	if err == vm.ErrStepLimit {
		err = ErrBudget
	}
	return o, err
}

// Collect runs i until it halts and returns all the values it produced. The
// machine only consumes inputs already queued with PushInput or the vm.Input
// option; if it needs more, Collect returns ErrStarved along with the outputs
// produced so far.
//
// If budget is > 0, the machine may execute at most budget instructions.
func Collect(i *vm.Instance, budget int64) ([]vm.Cell, error) {
	if err := limit(i, budget); err != nil {
		return nil, err
	}
	var out []vm.Cell
	for {
		o, err := run(i)
		if err != nil {
			return out, err
		}
		switch o.State {
		case vm.Halted:
			return out, nil
		case vm.NeedInput:
			return out, errors.Wrapf(ErrStarved, "pc=%d", i.PC)
		case vm.Output:
			out = append(out, o.Value)
		}
	}
}

// Pipeline runs one copy of program per phase, in series. Each engine receives
// its phase as first input, followed by the outputs of the previous engine.
// The first engine receives signal after its phase. The outputs of the last
// engine are returned.
//
// If maxSteps is > 0, each engine may execute at most maxSteps instructions.
func Pipeline(program []vm.Cell, phases []vm.Cell, signal vm.Cell, maxSteps int64) ([]vm.Cell, error) {
	in := []vm.Cell{signal}
	for n, ph := range phases {
		i, err := vm.New(program, vm.Input(ph), vm.Input(in...))
		if err != nil {
			return nil, err
		}
		out, err := Collect(i, maxSteps)
		if err != nil {
			return out, errors.Wrapf(err, "engine %d", n)
		}
		in = out
	}
	return in, nil
}
