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

// Package ascii implements the ASCII protocol used by many Intcode programs:
// input text is fed one character per input value, lines terminated by a new
// line, and output values in the 0-127 range are characters. Values outside of
// that range are plain numbers, usually a final answer.
package ascii

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// IsASCII returns true if v is a 7 bits ASCII character.
func IsASCII(v vm.Cell) bool {
	return v >= 0 && v < 128
}

// Encode returns the input values for the given text, one value per byte.
func Encode(s string) []vm.Cell {
	in := make([]vm.Cell, len(s))
	for k := 0; k < len(s); k++ {
		in[k] = vm.Cell(s[k])
	}
	return in
}

// EncodeLines returns the input values for the given lines, each line being
// terminated by a new line character.
func EncodeLines(lines ...string) []vm.Cell {
	var in []vm.Cell
	for _, l := range lines {
		in = append(in, Encode(l)...)
		in = append(in, '\n')
	}
	return in
}

// Decode splits output values into text and non-ASCII values.
func Decode(out []vm.Cell) (text string, values []vm.Cell) {
	b := make([]byte, 0, len(out))
	for _, v := range out {
		if IsASCII(v) {
			b = append(b, byte(v))
		} else {
			values = append(values, v)
		}
	}
	return string(b), values
}

// Writer writes output values to an io.Writer: ASCII values are written as
// characters, other values as decimal numbers on a line of their own.
type Writer struct {
	w   io.Writer
	buf []byte
	bol bool
}

// NewWriter returns a new Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, bol: true}
}

// WriteCell writes a single output value.
func (w *Writer) WriteCell(v vm.Cell) error {
	b := w.buf[:0]
	if IsASCII(v) {
		b = append(b, byte(v))
		w.bol = v == '\n'
	} else {
		if !w.bol {
			b = append(b, '\n')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, '\n')
		w.bol = true
	}
	w.buf = b
	_, err := w.w.Write(b)
	return errors.Wrap(err, "write failed")
}
