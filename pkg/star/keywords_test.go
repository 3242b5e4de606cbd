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

import "testing"

func TestSniffKeyword(t *testing.T) {
	tests := []struct {
		chunk     string
		wantFound bool
	}{
		{"an ordinary sentence with no reserved words", false},
		{"this text has a loop_ embedded in it", true},
		{"starts with stop_ right away", true},
		{"mentions save_frame_name inline", true},
		{"a lone _tag_like_thing appears here", true},
		{"global_ scope leaking into a value", true},
		{"data_block reference inside text", true},
	}
	for _, tt := range tests {
		_, got := sniffKeyword(tt.chunk)
		if got != tt.wantFound {
			t.Errorf("sniffKeyword(%q) found = %v, want %v", tt.chunk, got, tt.wantFound)
		}
	}
}
