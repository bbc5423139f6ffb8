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

	"golang.org/x/net/html/atom"
)

// htmlBlockCondition describes one of the seven CommonMark HTML block
// start/end conditions.
//
// Grounded on the teacher's htmlBlockConditions table (parse_html.go),
// adapted from span-based inline-reader matching to plain string
// matching since this parser carries no inline byte-reader cursor.
type htmlBlockCondition struct {
	kind                  HTMLKind
	start                 func(afterIndent string) bool
	end                   func(line string) bool
	canInterruptParagraph bool
}

// htmlBlockStarters1/Enders1 are the four raw-text elements that define
// HTML block type 1.
var (
	htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
	htmlBlockEnders1   = []string{"</pre>", "</script>", "</style>", "</textarea>"}
)

// htmlBlockStarters6 is the fixed list of block-level tag names that
// trigger HTML block type 6, sourced from golang.org/x/net/html/atom so
// the list comes from a real HTML tokenizer's tag table instead of a
// hand-maintained string slice.
var htmlBlockStarters6 = buildHTMLBlockStarters6()

func buildHTMLBlockStarters6() []string {
	atoms := []atom.Atom{
		atom.Address, atom.Article, atom.Aside, atom.Base, atom.Basefont,
		atom.Blockquote, atom.Body, atom.Caption, atom.Center, atom.Col,
		atom.Colgroup, atom.Dd, atom.Details, atom.Dialog, atom.Dir,
		atom.Div, atom.Dl, atom.Dt, atom.Fieldset, atom.Figcaption,
		atom.Figure, atom.Footer, atom.Form, atom.Frame, atom.Frameset,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Head,
		atom.Header, atom.Hr, atom.Html, atom.Iframe, atom.Legend,
		atom.Li, atom.Link, atom.Main, atom.Menu, atom.Menuitem,
		atom.Nav, atom.Noframes, atom.Ol, atom.Optgroup, atom.Option,
		atom.P, atom.Param, atom.Section, atom.Source, atom.Summary,
		atom.Table, atom.Tbody, atom.Td, atom.Tfoot, atom.Th, atom.Thead,
		atom.Title, atom.Tr, atom.Track, atom.Ul,
	}
	names := make([]string, len(atoms))
	for i, a := range atoms {
		names[i] = a.String()
	}
	return names
}

var htmlBlockConditions = []htmlBlockCondition{
	{
		kind: HTMLLiteral,
		start: func(s string) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitivePrefix(s, starter) {
					rest := s[len(starter):]
					if rest == "" || isSpaceTabOrEOL(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line string) bool {
			for _, ender := range htmlBlockEnders1 {
				if caseInsensitiveContains(line, ender) {
					return true
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{
		kind:                  HTMLComment,
		start:                 func(s string) bool { return strings.HasPrefix(s, "<!--") },
		end:                   func(line string) bool { return strings.Contains(line, "-->") },
		canInterruptParagraph: true,
	},
	{
		kind:                  HTMLProcessing,
		start:                 func(s string) bool { return strings.HasPrefix(s, "<?") },
		end:                   func(line string) bool { return strings.Contains(line, "?>") },
		canInterruptParagraph: true,
	},
	{
		kind:                  HTMLDeclaration,
		start:                 func(s string) bool { return strings.HasPrefix(s, "<!") && len(s) >= 3 && isASCIILetter(s[2]) },
		end:                   func(line string) bool { return strings.Contains(line, ">") },
		canInterruptParagraph: true,
	},
	{
		kind:                  HTMLCdata,
		start:                 func(s string) bool { return strings.HasPrefix(s, "<![CDATA[") },
		end:                   func(line string) bool { return strings.Contains(line, "]]>") },
		canInterruptParagraph: true,
	},
	{
		kind: HTMLSimple,
		start: func(s string) bool {
			switch {
			case strings.HasPrefix(s, "</"):
				s = s[2:]
			case strings.HasPrefix(s, "<"):
				s = s[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitivePrefix(s, starter) {
					rest := s[len(starter):]
					if rest == "" || isSpaceTabOrEOL(rest[0]) || rest[0] == '>' || strings.HasPrefix(rest, "/>") {
						return true
					}
				}
			}
			return false
		},
		end:                   isBlankLine,
		canInterruptParagraph: true,
	},
	{
		kind: HTMLCustom,
		start: func(s string) bool {
			if !strings.HasPrefix(s, "<") {
				return false
			}
			_, rest, ok := parseHTMLTag(s)
			if !ok {
				return false
			}
			return isBlankLine(rest)
		},
		end:                   isBlankLine,
		canInterruptParagraph: false,
	},
}

// matchHTMLBlockStart reports the HTML block kind (if any) that the given
// line (with containers already consumed, but indentation not yet
// stripped) opens. Kinds 1-5 and 6 may start with 0-3 leading spaces;
// kind 7 additionally requires that the current block not already be an
// open paragraph (handled by the caller, since this spec's paragraph
// interruption rule needs to see the open-path state).
func matchHTMLBlockStart(line string) (HTMLKind, bool) {
	s := newLineScanner(line)
	if stripLeadIndent(s) < 0 {
		return 0, false
	}
	rest := s.remainder()
	for _, cond := range htmlBlockConditions {
		if cond.start(rest) {
			return cond.kind, true
		}
	}
	return 0, false
}

// htmlBlockEndsAt reports whether line satisfies the end condition for
// the given HTML block kind.
func htmlBlockEndsAt(kind HTMLKind, line string) bool {
	for _, cond := range htmlBlockConditions {
		if cond.kind == kind {
			return cond.end(line)
		}
	}
	return false
}

// parseHTMLTag parses a single well-formed HTML open or close tag (type 7
// of the HTML block start conditions) starting at s[0] == '<'. It returns
// the tag name, the text after the tag, and whether a tag was found.
//
// Grounded on the teacher's parseHTMLTag/parseHTMLOpenTag/
// parseHTMLClosingTag (parse_html.go), simplified to operate directly on
// a line's bytes instead of an inline byte-reader cursor, and restricted
// to what HTML block type 7 needs: we don't need the tag's identity, only
// where it ends.
func parseHTMLTag(s string) (tag string, rest string, ok bool) {
	if s == "" || s[0] != '<' {
		return "", s, false
	}
	i := 1
	closing := false
	if i < len(s) && s[i] == '/' {
		closing = true
		i++
	}
	nameStart := i
	if i >= len(s) || !isASCIILetter(s[i]) {
		return "", s, false
	}
	i++
	for i < len(s) && (isASCIILetter(s[i]) || isASCIIDigit(s[i]) || s[i] == '-') {
		i++
	}
	tag = s[nameStart:i]

	if closing {
		i = skipHTMLSpace(s, i)
		if i >= len(s) || s[i] != '>' {
			return "", s, false
		}
		return tag, s[i+1:], true
	}

	for {
		before := i
		i = skipHTMLSpace(s, i)
		if i >= len(s) {
			return "", s, false
		}
		if s[i] == '/' {
			i++
			if i >= len(s) || s[i] != '>' {
				return "", s, false
			}
			return tag, s[i+1:], true
		}
		if s[i] == '>' {
			return tag, s[i+1:], true
		}
		if i == before {
			// No space before an attribute: malformed.
			return "", s, false
		}
		next, ok := skipHTMLAttribute(s, i)
		if !ok {
			return "", s, false
		}
		i = next
	}
}

func skipHTMLSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func skipHTMLAttribute(s string, i int) (int, bool) {
	if i >= len(s) {
		return i, false
	}
	c := s[i]
	if !isASCIILetter(c) && c != '_' && c != ':' {
		return i, false
	}
	i++
	for i < len(s) && (isASCIILetter(s[i]) || isASCIIDigit(s[i]) || strings.IndexByte("_.:-", s[i]) >= 0) {
		i++
	}

	save := i
	i = skipHTMLSpace(s, i)
	if i >= len(s) || s[i] != '=' {
		return save, true
	}
	i++
	i = skipHTMLSpace(s, i)
	if i >= len(s) {
		return i, false
	}
	switch s[i] {
	case '\'':
		i++
		for i < len(s) && s[i] != '\'' {
			i++
		}
		if i >= len(s) {
			return i, false
		}
		return i + 1, true
	case '"':
		i++
		for i < len(s) && s[i] != '"' {
			i++
		}
		if i >= len(s) {
			return i, false
		}
		return i + 1, true
	default:
		start := i
		for i < len(s) && isUnquotedAttrChar(s[i]) {
			i++
		}
		if i == start {
			return i, false
		}
		return i, true
	}
}

func isUnquotedAttrChar(c byte) bool {
	return !isSpaceTabOrEOL(c) && strings.IndexByte("\"'=<>`", c) < 0
}

func isSpaceTabOrEOL(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

func caseInsensitiveContains(s, search string) bool {
	if len(search) > len(s) {
		return false
	}
	for i := 0; i+len(search) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(search)], search) {
			return true
		}
	}
	return false
}
