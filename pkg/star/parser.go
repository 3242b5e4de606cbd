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
	"errors"
	"strings"
)

// TokenSource is anything a parser can pull tokens from: *Lexer (push mode,
// already Fed and Closed) or *FileLexer (pull mode, reads an io.Reader).
type TokenSource interface {
	NextToken() (*Token, error)
}

// errStopped unwinds a parse after a handler callback returns a stop hint,
// or after a fatal error has already been reported to the ErrorSink. It
// never escapes a parser's exported Parse method: that method, or its
// Fatal-catching caller, turns it back into a plain nil error, since the
// stop was already reported through the ErrorSink, not through Go's error
// return.
var errStopped = errors.New("star: parse stopped")

// commentSink is the common subset of all three handler interfaces needed
// by the shared trivia-skipping next().
type commentSink interface {
	Comment(line int, text string) bool
}

// baseParser holds the state and mechanics shared by ItemParser,
// TagValueParser and StreamingParser: one-token pushback, trivia
// skipping, and the two flavors of delimited-value reading. Grounded on
// the pushback stack in openconfig-goyang's pkg/yang/parse.go (parser.tokens)
// and on sas/parsebase.py's ParserBase sentinels.
type baseParser struct {
	lex      TokenSource
	eh       ErrorSink
	dialect  Dialect
	pending  *Token
	dataName string
	saveName string
	verbose  bool
}

func newBaseParser(lex TokenSource, eh ErrorSink, d Dialect) baseParser {
	if eh == nil {
		eh = NewDefaultErrorSink(nil)
	}
	return baseParser{
		lex:      lex,
		eh:       eh,
		dialect:  d,
		dataName: FileSentinel,
		saveName: UnnamedSentinel,
	}
}

// pushback stores t in the one-token slot. If the slot is already full it
// panics; nothing is reported to the ErrorSink.
func (p *baseParser) pushback(t *Token) {
	if p.pending != nil {
		panic("star: pushback buffer already full")
	}
	p.pending = t
}

func (p *baseParser) nextRaw() (*Token, error) {
	if p.pending != nil {
		t := p.pending
		p.pending = nil
		return t, nil
	}
	return p.lex.NextToken()
}

// next returns the next structurally significant token: NL and SPACE are
// discarded, COMMENT is dispatched to ch.Comment and then discarded, a
// fatal lexer condition is reported to the ErrorSink and turned into
// errStopped, and true end of input returns (nil, nil).
func (p *baseParser) next(ch commentSink) (*Token, error) {
	for {
		t, err := p.nextRaw()
		if err != nil {
			if le, ok := err.(*LexError); ok {
				p.eh.Fatal(le.Line, le.Msg)
				return nil, errStopped
			}
			return nil, err
		}
		if t == nil {
			return nil, nil
		}
		switch t.Kind {
		case NL, SPACE:
			continue
		case COMMENT:
			if ch.Comment(t.Line, t.Text) {
				return nil, errStopped
			}
			continue
		}
		return t, nil
	}
}

// sniffScope reports whether the keyword sniffer applies to a delimited
// value opened by a token of kind k: true for multi-line delimited values
// (triple-quoted, semicolon text fields), false for single- and
// double-quoted values. Bareword and framecode values never reach the
// sniffer. See DESIGN.md "Keyword-sniffer scope".
func sniffScope(k Kind) bool {
	switch k {
	case SINGLESTART, DOUBLESTART:
		return false
	default:
		return true
	}
}

// maybeSniff reports a Warning if text contains a reserved keyword and
// returns the ErrorSink's stop hint.
func (p *baseParser) maybeSniff(openKind Kind, line int, text string) bool {
	if !sniffScope(openKind) {
		return false
	}
	if kw, ok := sniffKeyword(text); ok {
		return p.eh.Warning(line, "reserved keyword '"+kw+"' found in value")
	}
	return false
}

// closeKindFor maps an opening delimiter kind to the token kind that ends
// it.
var closeKindFor = map[Kind]Kind{
	SINGLESTART:  SINGLEEND,
	DOUBLESTART:  DOUBLEEND,
	TSINGLESTART: TSINGLEEND,
	TDOUBLESTART: TDOUBLEEND,
	SEMISTART:    SEMIEND,
}

// readValueBuffered reads a complete value into one string given its
// already-consumed opening token, which may be CHARACTERS (bareword),
// FRAMECODE, or one of the *START delimiter kinds. It bypasses next()'s
// trivia filtering: inside a delimited value, NL is literal content and
// '#' is never a comment (the lexer never emits COMMENT outside INITIAL
// mode).
func (p *baseParser) readValueBuffered(open *Token) (text, delim string, err error) {
	switch open.Kind {
	case CHARACTERS:
		return open.Text, "", nil
	case FRAMECODE:
		return open.Text, "$", nil
	}
	closeKind, ok := closeKindFor[open.Kind]
	if !ok {
		panic("star: readValueBuffered called with non-value token")
	}
	delim = Delim(open.Kind)
	var buf []byte
	for {
		t, terr := p.nextRaw()
		if terr != nil {
			if le, ok := terr.(*LexError); ok {
				p.eh.Fatal(le.Line, le.Msg)
				return "", "", errStopped
			}
			return "", "", terr
		}
		if t == nil {
			p.eh.Fatal(open.Line, "end of input inside delimited value")
			return "", "", errStopped
		}
		if t.Kind == closeKind {
			break
		}
		buf = append(buf, t.Text...)
	}
	text = string(buf)
	if open.Kind == SEMISTART {
		// The closing delimiter is the "\n;" digraph; the newline belongs
		// to the delimiter, not the value.
		text = strings.TrimSuffix(text, "\n")
	}
	if p.maybeSniff(open.Kind, open.Line, text) {
		return "", "", errStopped
	}
	return text, delim, nil
}

// readValueStreaming scans a value chunk by chunk, invoking emit for each
// chunk of text as it is read rather than buffering the whole value.
// emit's bool return is a stop hint. For bareword and framecode values it
// invokes emit exactly once.
func (p *baseParser) readValueStreaming(open *Token, emit func(line int, text string) bool) (delim string, err error) {
	switch open.Kind {
	case CHARACTERS:
		if emit(open.Line, open.Text) {
			return "", errStopped
		}
		return "", nil
	case FRAMECODE:
		if emit(open.Line, open.Text) {
			return "$", errStopped
		}
		return "$", nil
	}
	closeKind, ok := closeKindFor[open.Kind]
	if !ok {
		panic("star: readValueStreaming called with non-value token")
	}
	delim = Delim(open.Kind)
	var sniffBuf []byte
	doSniff := sniffScope(open.Kind)
	// For SEMI values the closing delimiter is the "\n;" digraph: the
	// newline lexes as part of the value's last NL token but belongs to
	// the delimiter, not the value, so the final chunk is held back until
	// we know it is in fact the last one and can be trimmed.
	strip := open.Kind == SEMISTART
	var held *Token
	emitChunk := func(t *Token) bool {
		if doSniff {
			sniffBuf = append(sniffBuf, t.Text...)
		}
		return emit(t.Line, t.Text)
	}
	for {
		t, terr := p.nextRaw()
		if terr != nil {
			if le, ok := terr.(*LexError); ok {
				p.eh.Fatal(le.Line, le.Msg)
				return "", errStopped
			}
			return "", terr
		}
		if t == nil {
			p.eh.Fatal(open.Line, "end of input inside delimited value")
			return "", errStopped
		}
		if t.Kind == closeKind {
			break
		}
		if !strip {
			if emitChunk(t) {
				return delim, errStopped
			}
			continue
		}
		if held != nil {
			if emitChunk(held) {
				return delim, errStopped
			}
		}
		held = t
	}
	if strip && held != nil {
		trimmed := strings.TrimSuffix(held.Text, "\n")
		if doSniff {
			sniffBuf = append(sniffBuf, trimmed...)
		}
		if trimmed != "" && emit(held.Line, trimmed) {
			return delim, errStopped
		}
	}
	if doSniff && p.maybeSniff(open.Kind, open.Line, string(sniffBuf)) {
		return delim, errStopped
	}
	return delim, nil
}

// isValueStart reports whether k opens a value (bareword/framecode count
// as self-contained single-token values).
func isValueStart(k Kind) bool {
	switch k {
	case CHARACTERS, FRAMECODE, SINGLESTART, DOUBLESTART, TSINGLESTART, TDOUBLESTART, SEMISTART:
		return true
	}
	return false
}
