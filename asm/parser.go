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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	i      []vm.Cell
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) errorf(format string, args ...interface{}) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.error(pos, fmt.Sprintf(format, args...))
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// literal converts s to an integer value. s can be a Go integer literal, a Go
// character literal or the name of a constant.
func (p *parser) literal(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.errorf("invalid character literal %s", s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value writes an integer literal, constant or label address.
func (p *parser) value(s string) {
	if v, ok := p.literal(s); ok {
		p.write(v)
		return
	}
	if s[0] == ':' || s[0] == '.' || s[0] == '#' || s[0] == '~' {
		p.errorf("invalid label reference %s", s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

// operand compiles parameter n of the instruction at address ins.
func (p *parser) operand(ins int, op vm.Opcode, n int, s string) {
	mode := vm.ModePosition
	switch s[0] {
	case '#':
		mode = vm.ModeImmediate
		s = s[1:]
	case '~':
		mode = vm.ModeRelative
		s = s[1:]
	}
	if s == "" {
		p.errorf("missing value for parameter %d of %v", n+1, op)
		p.write(0)
		return
	}
	if mode == vm.ModeImmediate && op.Dst() == n {
		p.errorf("immediate mode not allowed for parameter %d of %v", n+1, op)
	}
	p.i[ins] += vm.Cell(mode) * [...]vm.Cell{100, 1000, 10000}[n]
	p.value(s)
}

// number scans the next token and converts it to an integer for use as a
// directive argument.
func (p *parser) number(directive string) (int, bool) {
	if p.s.Scan() == scanner.EOF {
		p.errorf("%s: unexpected end of file", directive)
		return 0, false
	}
	s := p.s.TokenText()
	v, ok := p.literal(s)
	if !ok {
		p.errorf("%s: expected integer or constant, got %s", directive, s)
		return 0, false
	}
	return int(v), true
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		if v, ok := p.number(s); ok {
			if v < 0 {
				p.errorf(".org: negative address %d", v)
				break
			}
			p.pc = v
		}
	case ".dat":
		if p.s.Scan() == scanner.EOF {
			p.errorf(".dat: unexpected end of file")
			break
		}
		p.value(p.s.TokenText())
	case ".equ":
		if p.s.Scan() != scanner.Ident {
			p.errorf(".equ: expected identifier, got %s", p.s.TokenText())
			break
		}
		name := p.s.TokenText()
		pos := p.s.Position
		if l, ok := p.labels[name]; ok {
			p.errorf(".equ: redefinition of %s, previously defined/used as a label here: %s", name, l.pos)
			break
		}
		if v, ok := p.number(s); ok {
			p.consts[name] = labelSite{pos, v}
		}
	default:
		p.errorf("unknown dot directive: %s", s)
	}
}

func (p *parser) defineLabel(s string) {
	n := s[1:]
	if len(n) == 0 {
		p.errorf("empty label name")
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.errorf("label redefinition: %s, previously defined as a constant here: %s", n, cst.pos)
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.errorf("label redefinition: %s, previous definition here: %s", n, l.pos)
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.errorf("%s", msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.errorf("unexpected character %s", strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		switch {
		case s == "(":
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.errorf("unterminated comment")
			}
		case s[0] == ':':
			p.defineLabel(s)
		case s[0] == '.':
			p.directive(s)
		default:
			op, ok := opcodeIndex[s]
			if !ok {
				// implicit .dat
				p.value(s)
				break
			}
			ins, pos := p.pc, p.s.Position
			p.write(vm.Cell(op))
			for n := 0; n < op.Params(); n++ {
				if p.s.Scan() == scanner.EOF {
					p.error(pos, fmt.Sprintf("%s: missing parameter %d", s, n+1))
					break
				}
				p.operand(ins, op, n, p.s.TokenText())
			}
		}
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, fmt.Sprintf("undefined label %s", n))
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
