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

// TagValueParser drives a ContentHandler2: tag and value are delivered as
// two separate callbacks. Inside a loop every tag is delivered before any
// value, matching the on-disk layout (the loop_'s tag list, then its
// row-major values) instead of ItemParser's logically-paired Data calls.
//
// Grounded on sas/nmrstar/nvparser.py's Parser, generalized to all three
// dialects the way ItemParser generalizes CifParser.
type TagValueParser struct {
	baseParser
	h ContentHandler2
}

// NewTagValueParser returns a TagValueParser reading tokens from lex and
// reporting to h.
func NewTagValueParser(lex TokenSource, h ContentHandler2, eh ErrorSink, d Dialect) *TagValueParser {
	return &TagValueParser{baseParser: newBaseParser(lex, eh, d), h: h}
}

// Parse runs the parser to completion or until stopped; see ItemParser.Parse.
func (p *TagValueParser) Parse() error {
	err := p.parseFile()
	if err == errStopped {
		return nil
	}
	return err
}

func (p *TagValueParser) parseFile() error {
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

func (p *TagValueParser) parseGlobal(open *Token) error {
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

func (p *TagValueParser) parseDataBlock(open *Token) error {
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

func (p *TagValueParser) parseSaveframe(open *Token) error {
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

func (p *TagValueParser) parseItem(tagTok *Token) error {
	if p.h.Tag(tagTok.Line, tagTok.Text) {
		return errStopped
	}
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
	if p.h.Value(valTok.Line, val, delim) {
		return errStopped
	}
	return nil
}

func (p *TagValueParser) parseLoop(open *Token) error {
	if p.h.StartLoop(open.Line) {
		return errStopped
	}

	numTags := 0
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
		if p.h.Tag(t.Line, t.Text) {
			return errStopped
		}
		numTags++
	}
	if numTags == 0 {
		if p.eh.Error(open.Line, "loop_ with no tags") {
			return errStopped
		}
	}

	numVals := 0
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
			if p.h.Value(t.Line, val, delim) {
				return errStopped
			}
			numVals++
		default:
			if p.eh.Error(t.Line, "unexpected token in loop_ values: "+t.String()) {
				return errStopped
			}
		}
	}
done:
	if numTags > 0 && numVals%numTags != 0 {
		if p.eh.Error(open.Line, "loop_ value count is not a multiple of its tag count") {
			return errStopped
		}
	}
	if p.h.EndLoop(open.Line) {
		return errStopped
	}
	return nil
}
