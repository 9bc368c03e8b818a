// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"bytes"
	"fmt"
	"strings"
)

// printer is an indentation-aware output buffer for generated code.
type printer struct {
	buf        *bytes.Buffer
	indentEach []byte
	level      int
	midLine    bool
}

func (p *printer) Indent() {
	p.level++
}

func (p *printer) Outdent() {
	if p.level > 0 {
		p.level--
	}
}

// Printf formats into the buffer, prefixing every non-empty line that
// starts at column zero with the current indentation.
func (p *printer) Printf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	for len(s) > 0 {
		var line string
		if i := strings.IndexByte(s, '\n'); i < 0 {
			line, s = s, ""
		} else {
			line, s = s[:i+1], s[i+1:]
		}
		if !p.midLine && line != "\n" {
			for i := 0; i < p.level; i++ {
				p.buf.Write(p.indentEach)
			}
		}
		p.buf.WriteString(line)
		p.midLine = !strings.HasSuffix(line, "\n")
	}
}

func (p *printer) Read(b []byte) (int, error) {
	return p.buf.Read(b)
}
