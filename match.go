// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import "strings"

// The matchers in this file are hand-written character scans rather than
// regular expressions, grounded on the teacher's parseThematicBreak /
// parseATXHeading / parseSetextHeadingUnderline / parseCodeFence /
// parseListMarker functions (blocks.go): CommonMark's original_source
// ancestor expressed these same rules as regexes (lib.rs), but the
// teacher shows the idiomatic, allocation-free Go way to write them.

// isBlankLine reports whether s contains only spaces and tabs.
func isBlankLine(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}

// stripLeadIndent consumes up to 3 columns of leading indentation, as
// required by every block matcher's "0-3 leading spaces" clause, and
// reports how many columns were consumed. If the line is indented by 4 or
// more columns it consumes nothing and returns -1.
func stripLeadIndent(s *lineScanner) int {
	m := s.mark()
	lead := s.leadingIndentColumns()
	if lead > 3 {
		s.restore(m)
		return -1
	}
	s.scanIndentUpto(lead)
	return lead
}

// matchThematicBreak reports whether the scanner is positioned at a
// thematic break: 0-3 leading spaces, then 3 or more of one character
// from {*, -, _}, optionally separated by whitespace, nothing else on
// the line.
func matchThematicBreak(line string) bool {
	s := newLineScanner(line)
	if stripLeadIndent(s) < 0 {
		return false
	}
	rest := s.remainder()
	n := 0
	var want byte
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; c {
		case '-', '_', '*':
			if n == 0 {
				want = c
			} else if c != want {
				return false
			}
			n++
		case ' ', '\t':
			// ignore
		default:
			return false
		}
	}
	return n >= 3
}

// atxHeading is the result of a successful matchATXHeading.
type atxHeading struct {
	level   int
	content string
}

// matchATXHeading recognises an ATX heading: 0-3 leading spaces, 1-6 '#',
// then either EOL or (required space, then optional content with an
// optional closing '#' run).
func matchATXHeading(line string) (atxHeading, bool) {
	s := newLineScanner(line)
	if stripLeadIndent(s) < 0 {
		return atxHeading{}, false
	}
	rest := s.remainder()

	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return atxHeading{}, false
	}
	if level == len(rest) {
		return atxHeading{level: level}, true
	}
	if rest[level] != ' ' && rest[level] != '\t' {
		return atxHeading{}, false
	}

	content := strings.Trim(rest[level+1:], " \t")
	// Strip an optional closing sequence of '#' characters, which must be
	// preceded by a space or tab (or be the entire remaining content).
	trimmed := strings.TrimRight(content, "#")
	if trimmed == content {
		return atxHeading{level: level, content: content}, true
	}
	if trimmed == "" || strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t") {
		content = strings.TrimRight(trimmed, " \t")
	}
	return atxHeading{level: level, content: content}, true
}

// matchSetextUnderline recognises a Setext underline: 0-3 leading
// spaces, a run of '=' (level 1) or '-' (level 2), optional trailing
// spaces, EOL.
func matchSetextUnderline(line string) (level int, ok bool) {
	s := newLineScanner(line)
	if stripLeadIndent(s) < 0 {
		return 0, false
	}
	rest := s.remainder()
	if rest == "" {
		return 0, false
	}
	var want byte
	switch rest[0] {
	case '=':
		want, level = '=', 1
	case '-':
		want, level = '-', 2
	default:
		return 0, false
	}
	i := 0
	for i < len(rest) && rest[i] == want {
		i++
	}
	if !isBlankLine(rest[i:]) {
		return 0, false
	}
	return level, true
}

// codeFence is the result of a successful matchCodeFence.
type codeFence struct {
	char byte
	n    int
	info string
	lead int
}

// matchCodeFence recognises a fenced-code opener or closer line: 0-3
// leading spaces (lead), a fence of 3 or more of '`' or '~', then an info
// string to EOL.
func matchCodeFence(line string) (codeFence, bool) {
	s := newLineScanner(line)
	lead := stripLeadIndent(s)
	if lead < 0 {
		return codeFence{}, false
	}
	rest := s.remainder()
	if len(rest) < 3 || (rest[0] != '`' && rest[0] != '~') {
		return codeFence{}, false
	}
	f := codeFence{char: rest[0], lead: lead}
	for f.n < len(rest) && rest[f.n] == f.char {
		f.n++
	}
	if f.n < 3 {
		return codeFence{}, false
	}
	info := strings.Trim(rest[f.n:], " \t")
	if f.char == '`' && strings.ContainsRune(info, '`') {
		return codeFence{}, false
	}
	f.info = info
	return f, true
}

// matchesCloser reports whether close is a valid closing fence for the
// fence that open describes: same character, at least as long, and an
// empty (after trimming) info string.
func (open codeFence) matchesCloser(close codeFence) bool {
	return close.char == open.char && close.n >= open.n && close.info == ""
}

// indentedCodeIndentWidth is the number of columns of leading indentation
// that qualifies as an indented code block.
const indentedCodeIndentWidth = 4

// matchIndentedCode reports whether line has at least 4 columns of
// leading indent followed by non-space content, and returns that content
// (with the leading 4 columns stripped, honoring tab credit).
func matchIndentedCode(line string) (content string, ok bool) {
	s := newLineScanner(line)
	if s.leadingIndentColumns() < indentedCodeIndentWidth {
		return "", false
	}
	s.scanIndentUpto(indentedCodeIndentWidth)
	rest := s.remainder()
	if isBlankLine(rest) {
		return "", false
	}
	return rest, true
}

// matchBlockQuoteMarker reports whether the scanner is positioned at a
// block quote marker: 0-3 leading spaces, '>', optionally followed by one
// space or one tab. It consumes the marker (and separator) from s and
// returns true on success, leaving s unchanged on failure.
func matchBlockQuoteMarker(s *lineScanner) bool {
	m := s.mark()
	if stripLeadIndent(s) < 0 {
		s.restore(m)
		return false
	}
	rest := s.remainder()
	if rest == "" || rest[0] != '>' {
		s.restore(m)
		return false
	}
	s.advanceBytes(1)
	if after := s.remainder(); after != "" && (after[0] == ' ' || after[0] == '\t') {
		s.scanIndentUpto(1)
	}
	return true
}

// listMarker is the result of a successful matchListMarker.
type listMarker struct {
	kind  ListMarkerKind
	char  byte // '-', '+', '*', '.', or ')'
	start int  // ordered list start number
	width int  // bytes consumed by the marker itself (not the trailing separator)
	blank bool // true if nothing but whitespace follows the marker
}

// matchListMarker recognises a list-item marker: 0-3 leading spaces, then
// a marker of either a single -/+/* (unordered) or 1-9 digits followed by
// . or ) (ordered), then either EOL or >=1 space/tab of separation.
func matchListMarker(line string) (listMarker, bool) {
	s := newLineScanner(line)
	if stripLeadIndent(s) < 0 {
		return listMarker{}, false
	}
	rest := s.remainder()
	if rest == "" {
		return listMarker{}, false
	}
	switch c := rest[0]; {
	case c == '-' || c == '+' || c == '*':
		trail := rest[1:]
		if trail != "" && trail[0] != ' ' && trail[0] != '\t' {
			return listMarker{}, false
		}
		return listMarker{kind: UnorderedList, char: c, width: 1, blank: isBlankLine(trail)}, true
	case isASCIIDigit(c):
		n := 0
		i := 0
		for i < len(rest) && i < 9 && isASCIIDigit(rest[i]) {
			n = n*10 + int(rest[i]-'0')
			i++
		}
		if i >= len(rest) || (rest[i] != '.' && rest[i] != ')') {
			return listMarker{}, false
		}
		delim := rest[i]
		trail := rest[i+1:]
		if trail != "" && trail[0] != ' ' && trail[0] != '\t' {
			return listMarker{}, false
		}
		return listMarker{kind: OrderedList, char: delim, start: n, width: i + 1, blank: isBlankLine(trail)}, true
	default:
		return listMarker{}, false
	}
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
