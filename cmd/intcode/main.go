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
	"os"
	"strings"

	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/kutil/util"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode")

// globals holds the global flags and the run file they point to.
type globals struct {
	configFile string
	verbose    int
	logFile    string
	debug      bool
	steps      int64

	cfg *config.Config
	// last machine run, for diagnostics.
	vm *vm.Instance
}

func (g *globals) setup(cmd *cobra.Command) error {
	var err error
	if g.configFile != "" {
		g.cfg, err = config.Load(g.configFile)
	} else {
		g.cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	if g.cfg == nil {
		g.cfg = new(config.Config)
	}

	if !cmd.Flags().Changed("verbose") {
		g.verbose = g.cfg.Log.Verbosity
	}
	if !cmd.Flags().Changed("log") {
		g.logFile = g.cfg.Log.File
	}
	commonlog.Initialize(g.verbose, g.logFile)

	if !cmd.Flags().Changed("steps") {
		g.steps = g.cfg.Steps
	}
	if g.cfg.Dir != "" {
		log.Infof("using run file %s", g.cfg.Dir)
	}
	return nil
}

// program loads the program named on the command line, or the one from the run
// file if none.
func (g *globals) program(args []string) ([]vm.Cell, error) {
	name := g.cfg.ProgramPath()
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return nil, errors.New("no program file")
	}
	prog, err := vm.Load(name)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %s: %d cells", name, len(prog))
	return prog, nil
}

func newRootCmd() (*cobra.Command, *globals) {
	g := new(globals)
	root := &cobra.Command{
		Use:   "intcode",
		Short: "Intcode virtual machine",
		Long: strings.TrimSpace(`
intcode runs, assembles and disassembles Intcode programs.

Program files are lists of comma separated integers. Parameters not given on
the command line are read from an intcode.toml run file, looked up in the
current directory and its parents, or from the file given with --config.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.configFile, "config", "", "read run parameters from `file`")
	pf.CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (can be repeated)")
	pf.StringVar(&g.logFile, "log", "", "write log to `file` instead of stderr")
	pf.BoolVar(&g.debug, "debug", false, "print full error diagnostics")
	pf.Int64Var(&g.steps, "steps", 0, "instruction budget per machine (0 for no limit)")

	root.AddCommand(
		newRunCmd(g),
		newRingCmd(g),
		newDisasmCmd(g),
		newAsmCmd(g),
	)
	return root, g
}

// atExit prints err to stderr and exits. With --debug, the full error chain
// with stack traces is printed, along with the state of the last machine run.
func atExit(g *globals, err error) {
	if !g.debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		util.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if g.vm != nil {
		dumpState(g.vm, os.Stderr)
	}
	util.Exit(1)
}

func main() {
	root, g := newRootCmd()
	if err := root.Execute(); err != nil {
		atExit(g, err)
	}
	// flush logs
	util.Exit(0)
}
