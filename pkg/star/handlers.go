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

// Every callback below except the *Data/*Saveframe terminators (endData,
// endSaveframe are informational only; see each interface) may return a
// stop hint: true asks the parser to cease work and unwind without firing
// any further callbacks.
//
// startGlobal/endGlobal and startSaveframe/endSaveframe are never invoked
// by the mmCIF parser (no global blocks, no saveframes); implementers that
// only ever run against mmCIF input may leave them as no-ops.

// ContentHandler delivers a loop or item's tag/value pair in a single
// callback (Data), with positional matching of values to tags inside a
// loop. This is the coarsest-grained, most convenient of the three
// handler shapes, at the cost of buffering every value into memory before
// Data fires.
type ContentHandler interface {
	StartGlobal(line int) bool
	EndGlobal(line int)
	StartData(line int, name string) bool
	EndData(line int, name string)
	StartSaveframe(line int, name string) bool
	EndSaveframe(line int, name string)
	StartLoop(line int) bool
	EndLoop(line int) bool
	Comment(line int, text string) bool
	// Data reports one data item. Inside a loop, inLoop is true and Data
	// is invoked once per value, tag chosen by position modulo the
	// loop's tag count.
	Data(tag string, tagLine int, val string, valLine int, delim string, inLoop bool) bool
}

// ContentHandler2 delivers a tag and its value as two separate callbacks.
// Inside a loop, every tag is delivered before any value, matching the
// on-disk layout (loop_ tag list, then row-major values) rather than the
// logical tag/value pairing ContentHandler reconstructs.
type ContentHandler2 interface {
	StartGlobal(line int) bool
	EndGlobal(line int)
	StartData(line int, name string) bool
	EndData(line int, name string)
	StartSaveframe(line int, name string) bool
	EndSaveframe(line int, name string)
	StartLoop(line int) bool
	EndLoop(line int) bool
	Comment(line int, text string) bool
	Tag(line int, tag string) bool
	Value(line int, text string, delim string) bool
}

// SasContentHandler is the most SAX-like of the three: values arrive as
// StartValue(delim) -> Characters(text)* -> EndValue(delim), with no
// buffering by the parser. Multi-chunk values (semicolon and
// triple-quoted) may produce more than one Characters call per value;
// bareword and framecode values are wrapped in a synthetic
// StartValue/Characters/EndValue triplet so consumers see a uniform
// surface (delim is "" for a bareword, "$" for a framecode).
type SasContentHandler interface {
	StartGlobal(line int) bool
	EndGlobal(line int)
	StartData(line int, name string) bool
	EndData(line int, name string)
	StartSaveframe(line int, name string) bool
	EndSaveframe(line int, name string)
	StartLoop(line int) bool
	EndLoop(line int) bool
	Comment(line int, text string) bool
	Tag(line int, tag string) bool
	StartValue(line int, delim string) bool
	Characters(line int, text string) bool
	EndValue(line int, delim string) bool
}
