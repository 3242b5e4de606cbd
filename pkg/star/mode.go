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

// mode identifies which character class and pattern set the scanner uses.
// The mode stack starts and must end (at EOF) with exactly [modeInitial].
type mode int

const (
	modeInitial mode = iota
	modeSQ           // inside '...'
	modeTSQ          // inside '''...'''
	modeDQ           // inside "..."
	modeTDQ          // inside """..."""
	modeSemi         // inside ;...\n;
)

// modeStack is a small LIFO of modes, INITIAL at the bottom.
type modeStack struct {
	stack []mode
}

func newModeStack() *modeStack {
	return &modeStack{stack: []mode{modeInitial}}
}

func (s *modeStack) top() mode {
	return s.stack[len(s.stack)-1]
}

func (s *modeStack) push(m mode) {
	s.stack = append(s.stack, m)
}

// pop removes the top mode, unless it is the base INITIAL mode (which is
// never popped). Returns false if called with only INITIAL on the stack.
func (s *modeStack) pop() bool {
	if len(s.stack) <= 1 {
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	return true
}

// atBase reports whether the stack holds only the base INITIAL mode, i.e.
// whether it is safe to be at EOF here.
func (s *modeStack) atBase() bool {
	return len(s.stack) == 1
}
