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
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/atom"
)

// RenderHTML writes the HTML representation of a block tree returned by
// [Parse] to w. It returns the first error encountered writing to w, if
// any.
//
// Grounded on the teacher's package-level RenderHTML/HTMLRenderer.Render
// split (html_renderer.go): rendering builds up a single []byte buffer and
// writes it once, rather than issuing many small Writer.Write calls.
func RenderHTML(w io.Writer, root *Block) error {
	dst := appendBlock(nil, root)
	if _, err := w.Write(dst); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

var headingTags = [6]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// appendBlock appends the rendered HTML of block to dst and returns the
// resulting slice.
func appendBlock(dst []byte, b *Block) []byte {
	switch b.Kind() {
	case RootKind:
		for _, c := range b.children {
			dst = appendBlock(dst, c)
		}
	case BlockQuoteKind:
		dst = append(dst, "<blockquote>\n"...)
		for _, c := range b.children {
			dst = appendBlock(dst, c)
		}
		dst = append(dst, "</blockquote>\n"...)
	case ListKind:
		dst = appendListOpenTag(dst, b)
		for _, c := range b.children {
			dst = appendBlock(dst, c)
		}
		dst = appendCloseTag(dst, listTag(b))
		dst = append(dst, '\n')
	case ListItemKind:
		dst = append(dst, "<li>"...)
		for _, c := range b.children {
			if c.Kind() != TextKind && len(dst) > 0 && dst[len(dst)-1] != '\n' {
				dst = append(dst, '\n')
			}
			dst = appendBlock(dst, c)
		}
		dst = append(dst, "</li>\n"...)
	case HeadingKind:
		tag := headingTags[b.level-1]
		dst = appendOpenTag(dst, tag)
		dst = append(dst, renderText(b.children)...)
		dst = appendCloseTag(dst, tag)
		dst = append(dst, '\n')
	case ParagraphKind:
		dst = append(dst, "<p>"...)
		dst = append(dst, renderText(b.children)...)
		dst = append(dst, "</p>\n"...)
	case ThematicBreakKind:
		dst = append(dst, "<hr />\n"...)
	case CodeKind:
		dst = appendCode(dst, b)
	case HTMLKind:
		dst = append(dst, b.text...)
	case TextKind:
		dst = append(dst, unescapeText(b.text)...)
	}
	return dst
}

func listTag(b *Block) atom.Atom {
	if b.listMarker == OrderedList {
		return atom.Ol
	}
	return atom.Ul
}

func appendListOpenTag(dst []byte, b *Block) []byte {
	tag := listTag(b)
	dst = append(dst, '<')
	dst = append(dst, tag.String()...)
	if b.listMarker == OrderedList && b.listStart != 1 {
		dst = append(dst, ` start="`...)
		dst = appendInt(dst, b.listStart)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	dst = append(dst, '\n')
	return dst
}

func appendOpenTag(dst []byte, tag atom.Atom) []byte {
	dst = append(dst, '<')
	dst = append(dst, tag.String()...)
	dst = append(dst, '>')
	return dst
}

func appendCloseTag(dst []byte, tag atom.Atom) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, tag.String()...)
	dst = append(dst, '>')
	return dst
}

// appendCode renders a Code block. Fenced blocks carry the language name
// from their info string (the part before the first space) as a
// `language-` class, matching the convention popularized by highlight.js
// and widely used by static site generators built on CommonMark.
func appendCode(dst []byte, b *Block) []byte {
	dst = append(dst, "<pre><code"...)
	if lang, _, _ := strings.Cut(b.info, " "); lang != "" {
		dst = append(dst, ` class="language-`...)
		dst = append(dst, escapeHTML(lang)...)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	dst = append(dst, escapeCode(b.text)...)
	dst = append(dst, "</code></pre>\n"...)
	return dst
}

// renderText joins children's text, right-trims trailing whitespace, and
// resolves backslash escapes — the Text template shared by Heading and
// Paragraph. Factored out so the two render cases can't drift apart: a
// Setext-promoted Heading inherits its Paragraph's children verbatim and
// must trim the same way the Paragraph it replaced would have.
func renderText(children []*Block) string {
	return unescapeText(strings.TrimRight(joinText(children), " \t\n"))
}

func joinText(children []*Block) string {
	if len(children) == 1 {
		return children[0].text
	}
	var sb strings.Builder
	for _, c := range children {
		sb.WriteString(c.text)
	}
	return sb.String()
}

func appendInt(dst []byte, n int) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	start := len(dst)
	for n > 0 {
		dst = append(dst, byte('0'+n%10))
		n /= 10
	}
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}
