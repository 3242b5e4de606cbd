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

// FileSentinel is the data-block name a parser holds while no data_ block
// is open. No callback reports it: when end-of-input is reached before any
// data_ block was opened, the parsers return without calling EndData.
const FileSentinel = "__FILE__"

// UnnamedSentinel is the saveframe name used when none has been set. It is
// not currently reachable through the three dialect parsers (a saveframe
// always carries the name lexed off its save_<name> token) but is kept as
// a documented constant, mirroring parsebase.py's self._save_name default.
const UnnamedSentinel = "__UNNAMED__"
