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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
)

// itemRecorder is a ContentHandler that logs every callback as one string
// per event, in order, for table comparison with cmp.Diff.
type itemRecorder struct {
	events []string
}

func (r *itemRecorder) log(s string) bool { r.events = append(r.events, s); return false }

func (r *itemRecorder) StartGlobal(line int) bool                 { return r.log("startGlobal") }
func (r *itemRecorder) EndGlobal(line int)                        { r.log("endGlobal") }
func (r *itemRecorder) StartData(line int, name string) bool      { return r.log("startData " + name) }
func (r *itemRecorder) EndData(line int, name string)             { r.log("endData " + name) }
func (r *itemRecorder) StartSaveframe(line int, name string) bool { return r.log("startSaveframe " + name) }
func (r *itemRecorder) EndSaveframe(line int, name string)        { r.log("endSaveframe " + name) }
func (r *itemRecorder) StartLoop(line int) bool                   { return r.log("startLoop") }
func (r *itemRecorder) EndLoop(line int) bool                     { return r.log("endLoop") }
func (r *itemRecorder) Comment(line int, text string) bool        { return r.log("comment " + text) }

func (r *itemRecorder) Data(tag string, tagLine int, val string, valLine int, delim string, inLoop bool) bool {
	return r.log("data " + tag + "=" + delim + val + delim)
}

type recordingErrorSink struct {
	warnings []string
	errors   []string
	fatal    string
}

func (s *recordingErrorSink) Warning(line int, msg string) bool {
	s.warnings = append(s.warnings, msg)
	return false
}
func (s *recordingErrorSink) Error(line int, msg string) bool {
	s.errors = append(s.errors, msg)
	return false
}
func (s *recordingErrorSink) Fatal(line int, msg string) { s.fatal = msg }

func TestItemParserNMRStar(t *testing.T) {
	const input = `data_test
save_entry_information
   _Entry.Sf_category   entry_information
   _Entry.ID             1

   loop_
      _Entry_author.Ordinal
      _Entry_author.Family_name

      1 Smith
      2 "van Dyke"
   stop_
save_
`
	r := &itemRecorder{}
	eh := &recordingErrorSink{}
	p := NewItemParser(NewLexerString(input), r, eh, NMRStar)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(eh.errors) != 0 {
		t.Fatalf("unexpected errors: %v", eh.errors)
	}
	want := []string{
		"startData test",
		"startSaveframe entry_information",
		"data _Entry.Sf_category=entry_information",
		"data _Entry.ID=1",
		"startLoop",
		"data _Entry_author.Ordinal=1",
		"data _Entry_author.Family_name=Smith",
		"data _Entry_author.Ordinal=2",
		`data _Entry_author.Family_name="van Dyke"`,
		"endLoop",
		"endSaveframe entry_information",
		"endData test",
	}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestItemParserMmCIFImplicitLoopEnd(t *testing.T) {
	const input = `data_test
loop_
   _atom.id
   _atom.type
   1 C
   2 N
_other.tag value
`
	r := &itemRecorder{}
	eh := &recordingErrorSink{}
	p := NewItemParser(NewLexerString(input), r, eh, MmCIF)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(eh.errors) != 0 {
		t.Fatalf("unexpected errors: %v", eh.errors)
	}
	want := []string{
		"startData test",
		"startLoop",
		"data _atom.id=1",
		"data _atom.type=C",
		"data _atom.id=2",
		"data _atom.type=N",
		"endLoop",
		"data _other.tag=value",
		"endData test",
	}
	if diff := pretty.Compare(r.events, want); diff != "" {
		t.Errorf("events mismatch (-got +want):\n%s", diff)
	}
}

func TestItemParserMmCIFLoopTerminatedByEOF(t *testing.T) {
	const input = `data_test
loop_
   _atom.id
   _atom.type
   1 C
   2 N
`
	r := &itemRecorder{}
	eh := &recordingErrorSink{}
	p := NewItemParser(NewLexerString(input), r, eh, MmCIF)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if eh.fatal != "" {
		t.Fatalf("unexpected fatal error: %v", eh.fatal)
	}
	if len(eh.errors) != 0 {
		t.Fatalf("unexpected errors: %v", eh.errors)
	}
	want := []string{
		"startData test",
		"startLoop",
		"data _atom.id=1",
		"data _atom.type=C",
		"data _atom.id=2",
		"data _atom.type=N",
		"endLoop",
		"endData test",
	}
	if diff := pretty.Compare(r.events, want); diff != "" {
		t.Errorf("events mismatch (-got +want):\n%s", diff)
	}
}

func TestItemParserSingleTagLoopWithExplicitStop(t *testing.T) {
	const input = `data_test
loop_
   _a.x
   1
   2
stop_
`
	r := &itemRecorder{}
	eh := &recordingErrorSink{}
	p := NewItemParser(NewLexerString(input), r, eh, NMRStar)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(eh.errors) != 0 {
		t.Fatalf("unexpected errors for well-formed loop: %v", eh.errors)
	}
}

func TestItemParserLoopCountMismatchIsError(t *testing.T) {
	const input = `data_test
loop_
   _a.x
   _a.y
   1 2
   3
stop_
`
	eh := &recordingErrorSink{}
	p := NewItemParser(NewLexerString(input), &itemRecorder{}, eh, NMRStar)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(eh.errors) == 0 {
		t.Fatalf("expected a loop-count-mismatch error, got none")
	}
	if !strings.Contains(eh.errors[0], "multiple of its tag count") {
		t.Fatalf("errors[0] = %q, want mention of tag count mismatch", eh.errors[0])
	}
}

func TestTagValueParserDeliversTagsBeforeValues(t *testing.T) {
	const input = `data_test
loop_
   _a.x
   _a.y
   1 2
   3 4
stop_
`
	var events []string
	h := &tagValueRecorder{events: &events}
	eh := &recordingErrorSink{}
	p := NewTagValueParser(NewLexerString(input), h, eh, NMRStar)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{
		"startData test",
		"startLoop",
		"tag _a.x",
		"tag _a.y",
		"value 1",
		"value 2",
		"value 3",
		"value 4",
		"endLoop",
		"endData test",
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

type tagValueRecorder struct {
	events *[]string
}

func (r *tagValueRecorder) log(s string) bool { *r.events = append(*r.events, s); return false }

func (r *tagValueRecorder) StartGlobal(line int) bool                 { return r.log("startGlobal") }
func (r *tagValueRecorder) EndGlobal(line int)                        { r.log("endGlobal") }
func (r *tagValueRecorder) StartData(line int, name string) bool      { return r.log("startData " + name) }
func (r *tagValueRecorder) EndData(line int, name string)             { r.log("endData " + name) }
func (r *tagValueRecorder) StartSaveframe(line int, name string) bool { return r.log("startSaveframe " + name) }
func (r *tagValueRecorder) EndSaveframe(line int, name string)        { r.log("endSaveframe " + name) }
func (r *tagValueRecorder) StartLoop(line int) bool                   { return r.log("startLoop") }
func (r *tagValueRecorder) EndLoop(line int) bool                     { return r.log("endLoop") }
func (r *tagValueRecorder) Comment(line int, text string) bool        { return r.log("comment " + text) }
func (r *tagValueRecorder) Tag(line int, tag string) bool             { return r.log("tag " + tag) }
func (r *tagValueRecorder) Value(line int, text string, delim string) bool {
	return r.log("value " + text)
}

func TestStreamingParserChunksMultilineValue(t *testing.T) {
	const input = `data_test
_a.b
;line one
line two
;
`
	var chunks []string
	h := &streamRecorder{chunks: &chunks}
	eh := &recordingErrorSink{}
	p := NewStreamingParser(NewLexerString(input), h, eh, NMRStar)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"line one", "\n", "line two"}
	if diff := cmp.Diff(want, chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

type streamRecorder struct {
	chunks *[]string
}

func (r *streamRecorder) StartGlobal(line int) bool                 { return false }
func (r *streamRecorder) EndGlobal(line int)                        {}
func (r *streamRecorder) StartData(line int, name string) bool      { return false }
func (r *streamRecorder) EndData(line int, name string)             {}
func (r *streamRecorder) StartSaveframe(line int, name string) bool { return false }
func (r *streamRecorder) EndSaveframe(line int, name string)        {}
func (r *streamRecorder) StartLoop(line int) bool                   { return false }
func (r *streamRecorder) EndLoop(line int) bool                     { return false }
func (r *streamRecorder) Comment(line int, text string) bool        { return false }
func (r *streamRecorder) Tag(line int, tag string) bool             { return false }
func (r *streamRecorder) StartValue(line int, delim string) bool    { return false }
func (r *streamRecorder) EndValue(line int, delim string) bool      { return false }
func (r *streamRecorder) Characters(line int, text string) bool {
	*r.chunks = append(*r.chunks, text)
	return false
}
