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

// A BlockKind identifies the variant of a [Block].
type BlockKind int

const (
	// RootKind is the singleton root of a block tree.
	RootKind BlockKind = 1 + iota
	// BlockQuoteKind is a block quote container.
	BlockQuoteKind
	// ListKind is an ordered or unordered list container.
	ListKind
	// ListItemKind is a single item of a [ListKind] container.
	ListItemKind
	// HeadingKind is an ATX or Setext heading.
	HeadingKind
	// ParagraphKind is a run of text, possibly continued across lines.
	ParagraphKind
	// ThematicBreakKind is a horizontal rule.
	ThematicBreakKind
	// CodeKind is an indented or fenced code block.
	CodeKind
	// HTMLKind is a raw HTML block.
	HTMLKind
	// TextKind is a run of literal text carried by a [ParagraphKind] or
	// [HeadingKind] block, or, after the tightening pass, directly by a
	// [ListItemKind] block of a tight list.
	TextKind
)

func (k BlockKind) String() string {
	switch k {
	case RootKind:
		return "RootKind"
	case BlockQuoteKind:
		return "BlockQuoteKind"
	case ListKind:
		return "ListKind"
	case ListItemKind:
		return "ListItemKind"
	case HeadingKind:
		return "HeadingKind"
	case ParagraphKind:
		return "ParagraphKind"
	case ThematicBreakKind:
		return "ThematicBreakKind"
	case CodeKind:
		return "CodeKind"
	case HTMLKind:
		return "HTMLKind"
	case TextKind:
		return "TextKind"
	default:
		return "BlockKind(0)"
	}
}

// A ListMarkerKind distinguishes bulleted lists from numbered lists.
type ListMarkerKind int

const (
	// UnorderedList is a bulleted list, as introduced by a `-`, `+`, or `*` marker.
	UnorderedList ListMarkerKind = 1 + iota
	// OrderedList is a numbered list, as introduced by a `N.` or `N)` marker.
	OrderedList
)

func (k ListMarkerKind) String() string {
	switch k {
	case UnorderedList:
		return "UnorderedList"
	case OrderedList:
		return "OrderedList"
	default:
		return "ListMarkerKind(0)"
	}
}

// A Proximity records whether a list's items are rendered tight or loose.
// See https://spec.commonmark.org/0.30/#tight for the definition CommonMark
// gives to the two terms.
type Proximity int

const (
	// Tight lists render their item content without wrapping paragraphs in `<p>`.
	Tight Proximity = 1 + iota
	// Loose lists wrap every item's content in `<p>`.
	Loose
)

func (p Proximity) String() string {
	switch p {
	case Tight:
		return "Tight"
	case Loose:
		return "Loose"
	default:
		return "Proximity(0)"
	}
}

// An HTMLKind identifies one of the seven CommonMark HTML block start/end
// conditions. See https://spec.commonmark.org/0.30/#html-blocks.
type HTMLKind int

const (
	// HTMLLiteral covers <pre>, <script>, <style>, and <textarea>.
	HTMLLiteral HTMLKind = 1 + iota
	// HTMLComment covers <!-- ... -->.
	HTMLComment
	// HTMLProcessing covers <? ... ?>.
	HTMLProcessing
	// HTMLDeclaration covers <! followed by an ASCII letter.
	HTMLDeclaration
	// HTMLCdata covers <![CDATA[ ... ]]>.
	HTMLCdata
	// HTMLSimple covers the fixed list of block-level tag names, ending at a blank line.
	HTMLSimple
	// HTMLCustom covers any other single well-formed open or close tag, ending at a blank line.
	HTMLCustom
)

func (k HTMLKind) String() string {
	switch k {
	case HTMLLiteral:
		return "HTMLLiteral"
	case HTMLComment:
		return "HTMLComment"
	case HTMLProcessing:
		return "HTMLProcessing"
	case HTMLDeclaration:
		return "HTMLDeclaration"
	case HTMLCdata:
		return "HTMLCdata"
	case HTMLSimple:
		return "HTMLSimple"
	case HTMLCustom:
		return "HTMLCustom"
	default:
		return "HTMLKind(0)"
	}
}

// A Block is a node of a parsed Markdown block tree. The zero value is not
// a valid Block; use the constructors in this package or walk a tree
// returned by [Parse].
//
// Which fields are meaningful depends on Kind:
//
//   - [ListKind]: ListMarker, MarkerChar, ListStart, ListProximity
//   - [ListItemKind]: Indent
//   - [HeadingKind]: Level
//   - [CodeKind]: Text, Info
//   - [HTMLKind]: Text, HTMLBlockKind
//   - [TextKind]: Text
//
// Only [RootKind], [BlockQuoteKind], [ListKind], [ListItemKind], and
// [ParagraphKind] blocks ever have children appended to them during
// parsing; all other kinds are sealed at creation.
type Block struct {
	kind     BlockKind
	children []*Block

	// Heading
	level int

	// List
	listMarker ListMarkerKind
	markerChar byte
	listStart  int
	proximity  Proximity

	// ListItem
	indent int

	// Code, Html, Text
	text string
	// Code
	info string
	// Html
	htmlKind HTMLKind
}

// Kind reports the variant of the block.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Children returns the block's children in document order. It returns nil
// for leaf kinds.
func (b *Block) Children() []*Block {
	if b == nil {
		return nil
	}
	return b.children
}

// ChildCount returns len(b.Children()).
func (b *Block) ChildCount() int {
	return len(b.Children())
}

// Child returns the i'th child of the block.
func (b *Block) Child(i int) *Block {
	return b.children[i]
}

// Level returns the heading level (1-6) of a [HeadingKind] block.
func (b *Block) Level() int {
	if b == nil {
		return 0
	}
	return b.level
}

// ListMarker returns the marker kind of a [ListKind] block.
func (b *Block) ListMarker() ListMarkerKind {
	if b == nil {
		return 0
	}
	return b.listMarker
}

// MarkerChar returns the literal marker byte of a [ListKind] block: one of
// `-`, `+`, `*` for an unordered list, or `.`/`)` for an ordered list.
func (b *Block) MarkerChar() byte {
	if b == nil {
		return 0
	}
	return b.markerChar
}

// ListStart returns the starting number of an [OrderedList] [ListKind] block.
func (b *Block) ListStart() int {
	if b == nil {
		return 0
	}
	return b.listStart
}

// ListProximity returns whether a [ListKind] block is [Tight] or [Loose].
func (b *Block) ListProximity() Proximity {
	if b == nil {
		return 0
	}
	return b.proximity
}

// Indent returns the column at which continuation lines of a
// [ListItemKind] block must start.
func (b *Block) Indent() int {
	if b == nil {
		return 0
	}
	return b.indent
}

// Text returns the raw text of a [CodeKind], [HTMLKind], or [TextKind] block.
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// Info returns the (possibly empty) fenced code info string of a [CodeKind] block.
func (b *Block) Info() string {
	if b == nil {
		return ""
	}
	return b.info
}

// HTMLBlockKind returns which of the seven HTML block conditions produced
// an [HTMLKind] block.
func (b *Block) HTMLBlockKind() HTMLKind {
	if b == nil {
		return 0
	}
	return b.htmlKind
}

// acceptsChildren reports whether new blocks may be appended to b during
// parsing.
func (b *Block) acceptsChildren() bool {
	switch b.kind {
	case RootKind, BlockQuoteKind, ListKind, ListItemKind, ParagraphKind:
		return true
	default:
		return false
	}
}

func newRoot() *Block {
	return &Block{kind: RootKind}
}

func newBlockQuote() *Block {
	return &Block{kind: BlockQuoteKind}
}

func newList(marker ListMarkerKind, markerChar byte, start int) *Block {
	return &Block{kind: ListKind, listMarker: marker, markerChar: markerChar, listStart: start, proximity: Tight}
}

func newListItem(indent int) *Block {
	return &Block{kind: ListItemKind, indent: indent}
}

func newHeading(level int, children []*Block) *Block {
	return &Block{kind: HeadingKind, level: level, children: children}
}

func newParagraph() *Block {
	return &Block{kind: ParagraphKind}
}

func newThematicBreak() *Block {
	return &Block{kind: ThematicBreakKind}
}

func newCode() *Block {
	return &Block{kind: CodeKind}
}

func newHTML(kind HTMLKind) *Block {
	return &Block{kind: HTMLKind, htmlKind: kind}
}

func newText(s string) *Block {
	return &Block{kind: TextKind, text: s}
}
