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

import "regexp"

// keywords is the keyword-sniffer regex set: a fixed list of case-
// insensitive patterns checked against chunks of a multi-line delimited
// value (semicolon or triple-quoted text field). A match produces a
// Warning, never alters the value. Ported pattern-for-pattern from
// sas/__init__.py's KEYWORDS tuple.
//
// Policy: applied to multi-line-delimited values only (SEMISTART,
// TSINGLESTART, TDOUBLESTART), not to single/double-quoted or bareword
// values — see DESIGN.md "Keyword-sniffer scope".
var keywords = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:^|\s)(global_)\s*.*$`),
	regexp.MustCompile(`(?im)(?:^|\s)(data_\w+)\s*.*$`),
	regexp.MustCompile(`(?im)(?:^|\s)(save_\S*)\s*.*$`),
	regexp.MustCompile(`(?im)(?:^|\s)(loop_)\s*.*$`),
	regexp.MustCompile(`(?im)(?:^|\s)(stop_)\s*.*$`),
	regexp.MustCompile(`(?im)(?:^|\s)(_\w\S*)\s*.*$`),
}

// sniffKeyword returns the matched keyword text and true if chunk (which
// may span several lines) contains a reserved STAR keyword in value
// position.
func sniffKeyword(chunk string) (string, bool) {
	for _, pat := range keywords {
		if m := pat.FindStringSubmatch(chunk); m != nil {
			return m[1], true
		}
	}
	return "", false
}
