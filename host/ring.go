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

package host

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Ring is a set of engines wired in a feedback loop: the output of engine n is
// fed to engine n+1, and the output of the last engine is fed back to the
// first one.
type Ring struct {
	Engines []*vm.Instance
	// Signal is the value fed to the first engine on its first input request
	// after its phase. It is updated with every value produced by the ring.
	Signal vm.Cell
	// MaxSteps limits the number of instructions each engine may execute
	// during a single call to Run. No limit if <= 0.
	MaxSteps int64

	program []vm.Cell
	phases  []vm.Cell
}

// NewRing creates a ring of len(phases) engines running the given program.
// Engine n gets phases[n] as first input. Options are applied to all engines.
func NewRing(program []vm.Cell, phases []vm.Cell, opts ...vm.Option) (*Ring, error) {
	if len(phases) == 0 {
		return nil, errors.New("ring: no engines")
	}
	r := &Ring{
		Engines: make([]*vm.Instance, len(phases)),
		program: program,
		phases:  phases,
	}
	for n, ph := range phases {
		i, err := vm.New(program, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "engine %d", n)
		}
		i.PushInput(ph)
		r.Engines[n] = i
	}
	return r, nil
}

// Reset reloads the program into all engines and queues their phase again. The
// signal is left untouched.
func (r *Ring) Reset() {
	for n, i := range r.Engines {
		i.Reset()
		i.Load(r.program)
		i.PushInput(r.phases[n])
	}
}

// Run drives the ring round-robin until one of the engines halts and returns
// the last signal.
//
// The current engine is resumed until it produces a value, at which point the
// signal is updated and control passes to the next engine. An engine that
// needs input gets the current signal.
func (r *Ring) Run() (vm.Cell, error) {
	for n := range r.Engines {
		if err := limit(r.Engines[n], r.MaxSteps); err != nil {
			return r.Signal, err
		}
	}
	n := 0
	for {
		i := r.Engines[n]
		o, err := run(i)
		if err != nil {
			return r.Signal, errors.Wrapf(err, "engine %d", n)
		}
		switch o.State {
		case vm.Halted:
			return r.Signal, nil
		case vm.NeedInput:
			i.PushInput(r.Signal)
		case vm.Output:
			r.Signal = o.Value
			n = (n + 1) % len(r.Engines)
		}
	}
}
