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

import (
	"strings"

	"go4.org/bytereplacer"
)

// htmlEscaper replaces the characters that are unsafe to emit literally
// inside an HTML attribute value.
//
// Grounded on the teacher's internal/normhtml use of go4.org/bytereplacer
// for byte-level HTML escaping. Text/Heading/Paragraph/Code content each
// have their own, narrower replacement rule (see unescapeText and
// codeEscaper below); this 4-character replacer is used only for the
// fenced code info string's language attribute.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeHTML returns s with &, <, >, and " replaced by their HTML entities.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// codeEscaper replaces only the characters that would otherwise be read
// as markup inside a <code> body. Unlike htmlEscaper, it leaves & and "
// untouched: code content is not an HTML attribute, and neither
// character has any structural meaning inside element text.
var codeEscaper = bytereplacer.New(
	"<", "&lt;",
	">", "&gt;",
)

// escapeCode returns s with < and > replaced by their HTML entities.
func escapeCode(s string) string {
	return codeEscaper.Replace(s)
}

// unescapeText resolves the three backslash escapes CommonMark's block
// grammar recognizes outside of inline parsing: \# and \- produce the
// literal character, and \> produces the literal string "&gt;" so that
// an escaped angle bracket can never be read back as markup. Every other
// backslash sequence, escaped or not, passes through unchanged — this
// spec's Text template has no general escape surface, since that belongs
// to the inline phase it excludes.
func unescapeText(s string) string {
	if indexByte(s, '\\') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '#':
				sb.WriteByte('#')
				i++
				continue
			case '-':
				sb.WriteByte('-')
				i++
				continue
			case '>':
				sb.WriteString("&gt;")
				i++
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
