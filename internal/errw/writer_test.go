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

package errw_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/db47h/intcode/internal/errw"
	"github.com/pkg/errors"
)

type failWriter int

func (f *failWriter) Write(p []byte) (int, error) {
	if *f == 0 {
		return 0, io.ErrShortWrite
	}
	*f--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := errw.New(&b)
	fmt.Fprintf(w, "%d,%d", 1, 2)
	if w.Err != nil || b.String() != "1,2" {
		t.Fatalf("unexpected state %q, %v", b.String(), w.Err)
	}

	f := failWriter(1)
	w = errw.New(&f)
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("ko")); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected io.ErrShortWrite, got %v", err)
	}
	// sticky
	f = 10
	if n, err := w.Write([]byte("ko")); n != 0 || errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected sticky error, got %d, %v", n, err)
	}
}
