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
	"bufio"
	"io"
)

// FileLexer adapts an io.Reader into the Lexer's push-mode Feed/Close
// protocol: it reads and feeds one physical line at a time, so NextToken
// never needs more than the line currently being scanned plus whatever is
// already buffered. This mirrors sas.lexer.StarLexer's own
// _input_reader, which pulls one line per refill from the handed-in file
// object.
type FileLexer struct {
	lex *Lexer
	r   *bufio.Reader
	eof bool
}

// DefaultBufSize is the read-buffer size NewFileLexer uses, mirroring
// sas.lexer.StarLexer's own default bufsize of 65534.
const DefaultBufSize = 65534

// NewFileLexer returns a FileLexer reading from r, with a DefaultBufSize
// read buffer.
func NewFileLexer(r io.Reader) *FileLexer {
	return NewFileLexerSize(r, DefaultBufSize)
}

// NewFileLexerSize is like NewFileLexer but lets the caller set the
// read-buffer size, mirroring StarLexer's bufsize constructor argument.
func NewFileLexerSize(r io.Reader, bufSize int) *FileLexer {
	return &FileLexer{
		lex: NewLexer(),
		r:   bufio.NewReaderSize(r, bufSize),
	}
}

// Line returns the current 1-based line number.
func (f *FileLexer) Line() int { return f.lex.Line() }

// AtBase reports whether the lexer's mode stack is back at INITIAL.
func (f *FileLexer) AtBase() bool { return f.lex.AtBase() }

// NextToken returns the next token, or (nil, nil) at true end-of-file.
// Read errors other than io.EOF are returned as-is.
func (f *FileLexer) NextToken() (*Token, error) {
	for {
		tok, err := f.lex.NextToken()
		if err == nil {
			return tok, nil
		}
		if err != ErrNeedMoreInput {
			return nil, err
		}
		if f.eof {
			// NextToken asked for more after Close: a genuine EOF.
			return nil, nil
		}
		if err := f.refill(); err != nil {
			return nil, err
		}
	}
}

func (f *FileLexer) refill() error {
	line, err := f.r.ReadString('\n')
	if len(line) > 0 {
		f.lex.Feed(line)
	}
	if err == io.EOF {
		f.eof = true
		f.lex.Close()
		return nil
	}
	if err != nil {
		return err
	}
	return nil
}
