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
	"strings"

	"github.com/db47h/intcode/host"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRingCmd(g *globals) *cobra.Command {
	var (
		phases   []int64
		signal   int64
		feedback bool
	)
	cmd := &cobra.Command{
		Use:   "ring [PROGRAM]",
		Short: "Run copies of a program wired output to input",
		Long: strings.TrimSpace(`
Run one copy of a program per phase, each engine feeding its output to the
next one. Each engine receives its phase as first input and the first engine
receives the initial signal. In feedback mode, the output of the last engine is
fed back to the first until an engine halts. The final signal is printed.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg.Ring
			f := cmd.Flags()
			ph := cells(phases)
			if !f.Changed("phases") {
				ph = cfg.Phases
			}
			sig := vm.Cell(signal)
			if !f.Changed("signal") {
				sig = cfg.Signal
			}
			if !f.Changed("feedback") && g.cfg.Dir != "" {
				feedback = cfg.Feedback
			}
			if len(ph) == 0 {
				return errors.New("no phases")
			}
			prog, err := g.program(args)
			if err != nil {
				return err
			}
			res, err := runRing(prog, ph, sig, feedback, g.steps)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return errors.Wrap(err, "write failed")
		},
	}
	f := cmd.Flags()
	f.Int64SliceVarP(&phases, "phases", "p", nil, "engine `phases`, one engine per phase")
	f.Int64Var(&signal, "signal", 0, "initial signal")
	f.BoolVar(&feedback, "feedback", true, "feed the output of the last engine back to the first")
	return cmd
}

func runRing(prog, phases []vm.Cell, signal vm.Cell, feedback bool, steps int64) (vm.Cell, error) {
	if !feedback {
		out, err := host.Pipeline(prog, phases, signal, steps)
		if err != nil {
			return 0, err
		}
		if len(out) == 0 {
			return 0, errors.New("no output from last engine")
		}
		return out[len(out)-1], nil
	}
	r, err := host.NewRing(prog, phases)
	if err != nil {
		return 0, err
	}
	r.Signal = signal
	r.MaxSteps = steps
	res, err := r.Run()
	for n, e := range r.Engines {
		log.Infof("engine %d: %d instructions", n, e.InstructionCount())
	}
	return res, err
}
