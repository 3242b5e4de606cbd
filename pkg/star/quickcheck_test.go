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

func TestQuickCheckerNoDictionary(t *testing.T) {
	const input = `data_test
_a.b value
loop_
   _a.c
   _a.d
   1 2
stop_
`
	errs, err := CheckNMRStarString(input, nil)
	if err != nil {
		t.Fatalf("CheckNMRStarString: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none", errs)
	}
}

func TestQuickCheckerUnknownTag(t *testing.T) {
	const input = `data_test
_a.b value
_a.unknown other
`
	errs, err := CheckNMRStarString(input, []string{"_a.b"})
	if err != nil {
		t.Fatalf("CheckNMRStarString: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one unknown-tag error", errs)
	}
}

func TestQuickCheckerDictionaryIsCaseInsensitive(t *testing.T) {
	const input = `data_test
_A.B value
`
	errs, err := CheckNMRStarString(input, []string{"_a.b"})
	if err != nil {
		t.Fatalf("CheckNMRStarString: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none (case-insensitive match)", errs)
	}
}
