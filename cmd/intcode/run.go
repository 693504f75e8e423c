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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/host"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

type runOptions struct {
	input []int64
	lines []string
	ascii bool
	raw   bool
	dump  bool
	trace bool
}

func newRunCmd(g *globals) *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run [PROGRAM]",
		Short: "Run a program",
		Long: strings.TrimSpace(`
Run a program until it halts.

Values given with --input and lines given with --line are queued before the
program starts. When the program needs more input, it is read from stdin: one
line of comma or space separated integers, or a line of text in ASCII mode.
Output values are printed one per line, or as text in ASCII mode.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(g, cmd, args)
		},
	}
	f := cmd.Flags()
	f.Int64SliceVarP(&o.input, "input", "i", nil, "queue `values` as input (can be repeated)")
	f.StringArrayVarP(&o.lines, "line", "l", nil, "queue `text` as an ASCII input line (can be repeated)")
	f.BoolVarP(&o.ascii, "ascii", "a", false, "print output as text and read input lines as text")
	f.BoolVar(&o.raw, "raw", false, "in ASCII mode, send keystrokes as soon as typed")
	f.BoolVar(&o.dump, "dump", false, "dump registers and memory image upon exit")
	f.BoolVar(&o.trace, "trace", false, "log every instruction executed")
	return cmd
}

func cells(v []int64) []vm.Cell {
	c := make([]vm.Cell, len(v))
	for n := range v {
		c[n] = vm.Cell(v[n])
	}
	return c
}

// cellWriter writes output values.
type cellWriter interface {
	WriteCell(v vm.Cell) error
}

type numWriter struct {
	w io.Writer
}

func (w numWriter) WriteCell(v vm.Cell) error {
	_, err := fmt.Fprintln(w.w, v)
	return errors.Wrap(err, "write failed")
}

func traceIns(i *vm.Instance, ins vm.Instruction) {
	var sb strings.Builder
	asm.Disassemble(i.Mem.Fetch(i.PC, 4), 0, &sb)
	log.Debugf("% 10d\t%s", i.PC, sb.String())
}

// merge overrides run file settings with the flags set on the command line.
func (o *runOptions) merge(g *globals, cmd *cobra.Command) (input []vm.Cell) {
	cfg := g.cfg.Run
	f := cmd.Flags()
	input = cells(o.input)
	if !f.Changed("input") {
		input = cfg.Input
	}
	if !f.Changed("line") {
		o.lines = cfg.Lines
	}
	if !f.Changed("ascii") {
		o.ascii = cfg.ASCII
	}
	if !f.Changed("dump") {
		o.dump = cfg.Dump
	}
	return input
}

func (o *runOptions) run(g *globals, cmd *cobra.Command, args []string) (err error) {
	input := o.merge(g, cmd)
	if o.raw && !o.ascii {
		return errors.New("--raw requires ASCII mode")
	}
	prog, err := g.program(args)
	if err != nil {
		return err
	}

	opts := []vm.Option{
		vm.Input(input...),
		vm.Input(ascii.EncodeLines(o.lines...)...),
		vm.StepLimit(g.steps),
	}
	if o.trace {
		commonlog.SetMaxLevel(commonlog.Debug, "intcode")
		opts = append(opts, vm.Trace(traceIns))
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		return err
	}
	g.vm = i

	stdout := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		if err == nil && o.dump {
			err = dumpVM(i, stdout)
		}
		if e := stdout.Flush(); err == nil {
			err = errors.Wrap(e, "write failed")
		}
	}()

	var out cellWriter = numWriter{stdout}
	if o.ascii {
		out = ascii.NewWriter(stdout)
	}

	if o.raw {
		if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
			tearDown, err := setRawIO()
			if err != nil {
				log.Warningf("%v", err)
			} else {
				defer tearDown()
			}
		}
	}
	rd := bufio.NewReader(cmd.InOrStdin())

	for {
		res, err := i.Run()
		if err == vm.ErrStepLimit {
			return errors.Wrapf(host.ErrBudget, "pc=%d", i.PC)
		}
		if err != nil {
			return err
		}
		switch res.State {
		case vm.Halted:
			log.Infof("halted after %d instructions", i.InstructionCount())
			return nil
		case vm.Output:
			if err = out.WriteCell(res.Value); err != nil {
				return err
			}
		case vm.NeedInput:
			if err = stdout.Flush(); err != nil {
				return errors.Wrap(err, "write failed")
			}
			in, err := o.readInput(rd)
			if err == io.EOF {
				log.Warningf("end of input, machine waiting for input at pc=%d", i.PC)
				return nil
			}
			if err != nil {
				return err
			}
			i.PushInput(in...)
		}
	}
}

// readInput reads the next input values from rd. It returns io.EOF once rd is
// exhausted.
func (o *runOptions) readInput(rd *bufio.Reader) ([]vm.Cell, error) {
	if o.raw {
		b, err := rd.ReadByte()
		if err != nil {
			return nil, err
		}
		// in cbreak mode, we need to handle CTRL-D ourselves
		if b == 4 {
			return nil, io.EOF
		}
		return []vm.Cell{vm.Cell(b)}, nil
	}
	line, err := rd.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, err
	}
	if o.ascii {
		return ascii.EncodeLines(strings.TrimRight(line, "\r\n")), nil
	}
	return parseValues(line)
}

func parseValues(line string) ([]vm.Cell, error) {
	var in []vm.Cell
	for _, s := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid input")
		}
		in = append(in, vm.Cell(v))
	}
	return in, nil
}
