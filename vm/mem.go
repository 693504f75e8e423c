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

import "sort"

// Memory is the sparse memory of a VM instance. Cells that have never been
// written read as 0. There is no upper bound on addresses.
type Memory struct {
	cells map[Cell]Cell
	size  Cell
}

// NewMemory returns a new Memory with the given program loaded at address 0.
func NewMemory(program []Cell) *Memory {
	m := &Memory{cells: make(map[Cell]Cell, len(program))}
	m.load(program)
	return m
}

func (m *Memory) load(program []Cell) {
	for addr, v := range program {
		m.cells[Cell(addr)] = v
	}
	if n := Cell(len(program)); n > m.size {
		m.size = n
	}
}

func (m *Memory) clear() {
	m.cells = make(map[Cell]Cell)
	m.size = 0
}

// Read returns the value stored at address addr.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, &AddressError{Addr: addr}
	}
	return m.cells[addr], nil
}

// Write stores v at address addr.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return &AddressError{Addr: addr}
	}
	m.cells[addr] = v
	if addr >= m.size {
		m.size = addr + 1
	}
	return nil
}

// Len returns the number of cells that have been set.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Size returns the highest address set plus one.
func (m *Memory) Size() Cell {
	return m.size
}

// Slice returns a copy of memory cells in the range [from, to). Unset cells
// are returned as 0. Negative bounds are clamped to 0.
func (m *Memory) Slice(from, to Cell) []Cell {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return nil
	}
	s := make([]Cell, to-from)
	for k := range s {
		s[k] = m.cells[from+Cell(k)]
	}
	return s
}

// Fetch returns a copy of the n cells starting at addr. Fewer cells are
// returned if the range goes past the highest possible address. It returns nil
// for negative addresses.
func (m *Memory) Fetch(addr Cell, n int) []Cell {
	if addr < 0 {
		return nil
	}
	s := make([]Cell, 0, n)
	for k := 0; k < n; k++ {
		a := addr + Cell(k)
		if a < addr {
			break
		}
		s = append(s, m.cells[a])
	}
	return s
}

// Addrs returns the addresses of all the cells that have been set, in
// ascending order.
func (m *Memory) Addrs() []Cell {
	addrs := make([]Cell, 0, len(m.cells))
	for a := range m.cells {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Image returns a dense copy of memory from address 0 to Size. Since Size
// depends on the highest address written, use Addrs to inspect memories with
// far writes.
func (m *Memory) Image() []Cell {
	return m.Slice(0, m.size)
}

// Clone returns a deep copy of m.
func (m *Memory) Clone() *Memory {
	c := &Memory{cells: make(map[Cell]Cell, len(m.cells)), size: m.size}
	for k, v := range m.cells {
		c.cells[k] = v
	}
	return c
}
