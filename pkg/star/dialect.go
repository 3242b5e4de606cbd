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

// Dialect selects which of the three STAR grammars a parser accepts. All
// three are driven by the same lexer and the same shared parsing core;
// only the legal-token tables at each scope differ.
type Dialect int

const (
	// NMRStar: one data block, named saveframes, loops terminated by an
	// explicit stop_. No global_ blocks.
	NMRStar Dialect = iota
	// MmCIF: one data block, no saveframes, loops terminated implicitly
	// (by the next loop_, the next tag, or EOF). No global_ blocks.
	MmCIF
	// DDL: data blocks (possibly several), optional global_ blocks,
	// saveframes, and loops that accept either termination style.
	DDL
)

func (d Dialect) String() string {
	switch d {
	case NMRStar:
		return "NMR-STAR"
	case MmCIF:
		return "mmCIF"
	case DDL:
		return "DDL"
	default:
		return "Dialect(?)"
	}
}

// allowsGlobal reports whether a bare "global_" block is legal at file
// level for this dialect.
func (d Dialect) allowsGlobal() bool { return d == DDL }

// allowsSaveframes reports whether save_<name>/save_ scopes are legal
// inside a data block for this dialect.
func (d Dialect) allowsSaveframes() bool { return d == NMRStar || d == DDL }

// acceptsExplicitLoopEnd reports whether a loop_ scope may be terminated
// by an explicit stop_ token.
func (d Dialect) acceptsExplicitLoopEnd() bool { return d == NMRStar || d == DDL }

// acceptsImplicitLoopEnd reports whether a loop_ scope may be terminated
// implicitly: by the next loop_, the next tag, or EOF, with the
// triggering token pushed back for the enclosing scope to re-consume.
func (d Dialect) acceptsImplicitLoopEnd() bool { return d == MmCIF || d == DDL }
