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

// ItemParser drives a ContentHandler: every tag/value pair, whether
// inside a loop or not, is delivered through one Data callback with the
// value fully buffered. Dialect selects which of NMR-STAR, mmCIF or DDL
// grammar it accepts; the token-level mechanics (pushback, trivia
// skipping, value reading) are shared with TagValueParser and
// StreamingParser via baseParser.
//
// Grounded on sas/mmcif/parser.py's CifParser (the buffered, single-
// callback shape) generalized to all three dialects.
type ItemParser struct {
	baseParser
	h ContentHandler
}

// NewItemParser returns an ItemParser reading tokens from lex and
// reporting to h. eh may be nil, in which case diagnostics go to a
// DefaultErrorSink over os.Stderr.
func NewItemParser(lex TokenSource, h ContentHandler, eh ErrorSink, d Dialect) *ItemParser {
	return &ItemParser{baseParser: newBaseParser(lex, eh, d), h: h}
}

// Parse runs the parser to completion or until a handler callback or the
// ErrorSink asks it to stop. A stop request is not an error: Parse
// returns nil. Only an I/O error from the underlying TokenSource (not a
// structural or lexical problem, both of which are reported through the
// ErrorSink) is returned.
func (p *ItemParser) Parse() error {
	err := p.parseFile()
	if err == errStopped {
		return nil
	}
	return err
}

func (p *ItemParser) parseFile() error {
	for {
		t, err := p.next(p.h)
		if err != nil {
			return err
		}
		if t == nil {
			return nil
		}
		switch t.Kind {
		case DATASTART:
			if err := p.parseDataBlock(t); err != nil {
				return err
			}
		case GLOBALSTART:
			if !p.dialect.allowsGlobal() {
				if p.eh.Error(t.Line, "global_ not allowed in "+p.dialect.String()) {
					return errStopped
				}
				continue
			}
			if err := p.parseGlobal(t); err != nil {
				return err
			}
		default:
			if p.eh.Error(t.Line, "expected data_ or global_, found "+t.String()) {
				return errStopped
			}
		}
	}
}

func (p *ItemParser) parseGlobal(open *Token) error {
	if p.h.StartGlobal(open.Line) {
		return errStopped
	}
	endLine := open.Line
	for {
		t, err := p.next(p.h)
		if err != nil {
			return err
		}
		if t == nil {
			break
		}
		endLine = t.Line
		switch t.Kind {
		case DATASTART, GLOBALSTART:
			p.pushback(t)
			goto done
		case LOOPSTART:
			if err := p.parseLoop(t); err != nil {
				return err
			}
		case TAGNAME:
			if err := p.parseItem(t); err != nil {
				return err
			}
		default:
			if p.eh.Error(t.Line, "unexpected token in global_ block: "+t.String()) {
				return errStopped
			}
		}
	}
done:
	p.h.EndGlobal(endLine)
	return nil
}

func (p *ItemParser) parseDataBlock(open *Token) error {
	name := open.Text
	if p.h.StartData(open.Line, name) {
		return errStopped
	}
	p.dataName = name
	endLine := open.Line
	for {
		t, err := p.next(p.h)
		if err != nil {
			return err
		}
		if t == nil {
			break
		}
		endLine = t.Line
		switch t.Kind {
		case DATASTART, GLOBALSTART:
			p.pushback(t)
			goto done
		case SAVESTART:
			if !p.dialect.allowsSaveframes() {
				if p.eh.Error(t.Line, "save_ not allowed in "+p.dialect.String()) {
					return errStopped
				}
				continue
			}
			if err := p.parseSaveframe(t); err != nil {
				return err
			}
		case LOOPSTART:
			if err := p.parseLoop(t); err != nil {
				return err
			}
		case TAGNAME:
			if err := p.parseItem(t); err != nil {
				return err
			}
		default:
			if p.eh.Error(t.Line, "unexpected token in data block: "+t.String()) {
				return errStopped
			}
		}
	}
done:
	p.h.EndData(endLine, name)
	p.dataName = FileSentinel
	return nil
}

func (p *ItemParser) parseSaveframe(open *Token) error {
	name := open.Text
	if p.h.StartSaveframe(open.Line, name) {
		return errStopped
	}
	p.saveName = name
	endLine := open.Line
	for {
		t, err := p.next(p.h)
		if err != nil {
			return err
		}
		if t == nil {
			p.eh.Fatal(open.Line, "end of input inside saveframe "+name)
			return errStopped
		}
		endLine = t.Line
		switch t.Kind {
		case SAVEEND:
			goto done
		case LOOPSTART:
			if err := p.parseLoop(t); err != nil {
				return err
			}
		case TAGNAME:
			if err := p.parseItem(t); err != nil {
				return err
			}
		case DATASTART, GLOBALSTART, SAVESTART:
			p.eh.Fatal(t.Line, "unexpected "+t.Kind.String()+" inside saveframe "+name)
			return errStopped
		default:
			if p.eh.Error(t.Line, "unexpected token in saveframe: "+t.String()) {
				return errStopped
			}
		}
	}
done:
	p.h.EndSaveframe(endLine, name)
	p.saveName = UnnamedSentinel
	return nil
}

func (p *ItemParser) parseItem(tagTok *Token) error {
	valTok, err := p.next(p.h)
	if err != nil {
		return err
	}
	if valTok == nil {
		p.eh.Fatal(tagTok.Line, "end of input after tag "+tagTok.Text)
		return errStopped
	}
	if !isValueStart(valTok.Kind) {
		if p.eh.Error(valTok.Line, "expected value for tag "+tagTok.Text+", found "+valTok.String()) {
			return errStopped
		}
		p.pushback(valTok)
		return nil
	}
	val, delim, err := p.readValueBuffered(valTok)
	if err != nil {
		return err
	}
	if p.h.Data(tagTok.Text, tagTok.Line, val, valTok.Line, delim, false) {
		return errStopped
	}
	return nil
}

func (p *ItemParser) parseLoop(open *Token) error {
	if p.h.StartLoop(open.Line) {
		return errStopped
	}

	var tags []string
	var tagLines []int
	for {
		t, err := p.next(p.h)
		if err != nil {
			return err
		}
		if t == nil {
			p.eh.Fatal(open.Line, "end of input inside loop_ tag list")
			return errStopped
		}
		if t.Kind != TAGNAME {
			p.pushback(t)
			break
		}
		tags = append(tags, t.Text)
		tagLines = append(tagLines, t.Line)
	}
	if len(tags) == 0 {
		if p.eh.Error(open.Line, "loop_ with no tags") {
			return errStopped
		}
	}

	idx := 0
	for {
		t, err := p.next(p.h)
		if err != nil {
			return err
		}
		if t == nil {
			if p.dialect.acceptsImplicitLoopEnd() {
				goto done
			}
			p.eh.Fatal(open.Line, "end of input inside loop_ values")
			return errStopped
		}
		switch {
		case t.Kind == STOP:
			if !p.dialect.acceptsExplicitLoopEnd() {
				if p.eh.Error(t.Line, "unexpected stop_ in "+p.dialect.String()) {
					return errStopped
				}
			}
			goto done
		case t.Kind == LOOPSTART || t.Kind == TAGNAME:
			if !p.dialect.acceptsImplicitLoopEnd() {
				if p.eh.Error(t.Line, "expected stop_ to end loop_") {
					return errStopped
				}
			}
			p.pushback(t)
			goto done
		case isValueStart(t.Kind):
			val, delim, err := p.readValueBuffered(t)
			if err != nil {
				return err
			}
			n := len(tags)
			var tag string
			var tagLine int
			if n > 0 {
				tag, tagLine = tags[idx%n], tagLines[idx%n]
			}
			if p.h.Data(tag, tagLine, val, t.Line, delim, true) {
				return errStopped
			}
			idx++
		default:
			if p.eh.Error(t.Line, "unexpected token in loop_ values: "+t.String()) {
				return errStopped
			}
		}
	}
done:
	if len(tags) > 0 && idx%len(tags) != 0 {
		if p.eh.Error(open.Line, "loop_ value count is not a multiple of its tag count") {
			return errStopped
		}
	}
	if p.h.EndLoop(open.Line) {
		return errStopped
	}
	return nil
}
