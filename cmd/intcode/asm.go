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
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDisasmCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "disasm [PROGRAM]",
		Short: "Disassemble a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := g.program(args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(prog, w); err != nil {
				return err
			}
			return errors.Wrap(w.Flush(), "write failed")
		},
	}
}

func newAsmCmd(g *globals) *cobra.Command {
	var outFileName string
	cmd := &cobra.Command{
		Use:   "asm SOURCE",
		Short: "Assemble source code into a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open failed")
			}
			defer f.Close()
			prog, err := asm.Assemble(args[0], bufio.NewReader(f))
			if err != nil {
				return err
			}
			log.Infof("assembled %s: %d cells", args[0], len(prog))
			if outFileName == "" {
				return vm.Write(cmd.OutOrStdout(), prog)
			}
			return vm.Save(outFileName, prog)
		},
	}
	cmd.Flags().StringVarP(&outFileName, "output", "o", "", "write program to `file` instead of stdout")
	return cmd
}
