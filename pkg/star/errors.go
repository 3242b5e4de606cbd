// Copyright 2015 Google Inc.
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

package star

import (
	"fmt"
	"io"
	"os"
)

// ErrorSink is the passive callback object every parser reports diagnostics
// through. It has three severities:
//
//   - Warning: a structural-keyword regex matched inside a multi-line
//     value. Non-fatal; the returned bool is a stop hint.
//   - Error: a structural violation where recovery is plausible (unexpected
//     token, tag/value mismatch, malformed loop, unknown tag). Non-fatal;
//     the returned bool is a stop hint.
//   - Fatal: a condition parsing cannot recover from (illegal lexer input,
//     unexpected EOF inside an open scope or delimiter). The parser always
//     stops after Fatal; any return value is ignored.
//
// true from Warning/Error means "caller should cease parsing"; false means
// "keep going, at the handler's own risk".
type ErrorSink interface {
	Warning(line int, msg string) bool
	Error(line int, msg string) bool
	Fatal(line int, msg string)
}

// DefaultErrorSink writes diagnostics to an io.Writer (os.Stderr if nil).
// Error defaults to stopping the parse (returns true); Warning defaults to
// not stopping (returns false). This mirrors handlers.py's ErrorHandler,
// the default (overridable) error-handling policy in the original.
type DefaultErrorSink struct {
	Out io.Writer
}

// NewDefaultErrorSink returns a DefaultErrorSink writing to w, or to
// os.Stderr if w is nil.
func NewDefaultErrorSink(w io.Writer) *DefaultErrorSink {
	if w == nil {
		w = os.Stderr
	}
	return &DefaultErrorSink{Out: w}
}

func (d *DefaultErrorSink) writer() io.Writer {
	if d.Out == nil {
		return os.Stderr
	}
	return d.Out
}

func (d *DefaultErrorSink) Fatal(line int, msg string) {
	fmt.Fprintf(d.writer(), "critical parse error in line %d: %s\n", line, msg)
}

func (d *DefaultErrorSink) Error(line int, msg string) bool {
	fmt.Fprintf(d.writer(), "parse error in line %d: %s\n", line, msg)
	return true
}

func (d *DefaultErrorSink) Warning(line int, msg string) bool {
	fmt.Fprintf(d.writer(), "parser warning in line %d: %s\n", line, msg)
	return false
}

// LexError is a fatal, mode-specific lexer condition (currently only "bare
// newline inside a single/double quoted value"). The parser catches it,
// forwards it to ErrorSink.Fatal and stops.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d: %s", e.Line, e.Msg)
}
