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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// blockCmpOpts makes cmp able to compare *Block trees despite their
// unexported fields; Parse builds trees whose only exported surface is
// the accessor methods, so tests that need to assert on tree shape
// compare the unexported struct directly instead.
var blockCmpOpts = cmp.AllowUnexported(Block{})

func TestParseBlockQuoteNesting(t *testing.T) {
	got := Parse("> - a\n> - b")
	want := newRoot()
	want.children = []*Block{
		func() *Block {
			bq := newBlockQuote()
			list := newList(UnorderedList, '-', 0)
			item1 := newListItem(2)
			item1.children = []*Block{newText("a")}
			item2 := newListItem(2)
			item2.children = []*Block{newText("b")}
			list.children = []*Block{item1, item2}
			bq.children = []*Block{list}
			return bq
		}(),
	}
	if diff := cmp.Diff(want, got, blockCmpOpts); diff != "" {
		t.Errorf("Parse(...) mismatch (-want +got):\n%s", diff)
	}
}

// TestToHTML runs the end-to-end scenarios that exercise every module the
// block parser implements: containers, leaves, tightness, lazy
// continuation, and escaping.
func TestToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single paragraph",
			input: "hello world",
			want:  "<p>hello world</p>\n",
		},
		{
			name:  "multiline paragraph",
			input: "aaa\nbbb",
			want:  "<p>aaa\nbbb</p>\n",
		},
		{
			name:  "two paragraphs",
			input: "aaa\n\nbbb\n",
			want:  "<p>aaa</p>\n<p>bbb</p>\n",
		},
		{
			name:  "atx heading",
			input: "## Hello",
			want:  "<h2>Hello</h2>\n",
		},
		{
			name:  "atx heading with closing sequence",
			input: "# Hello #",
			want:  "<h1>Hello</h1>\n",
		},
		{
			name:  "setext heading promotes paragraph",
			input: "Hello\n=====",
			want:  "<h1>Hello</h1>\n",
		},
		{
			name:  "thematic break",
			input: "---",
			want:  "<hr />\n",
		},
		{
			name:  "blockquote",
			input: "> quoted\n> text",
			want:  "<blockquote>\n<p>quoted\ntext</p>\n</blockquote>\n",
		},
		{
			name:  "lazy blockquote continuation",
			input: "> quoted\nlazy",
			want:  "<blockquote>\n<p>quoted\nlazy</p>\n</blockquote>\n",
		},
		{
			name:  "tight list",
			input: "- a\n- b\n- c",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n<li>c</li>\n</ul>\n",
		},
		{
			name:  "loose list",
			input: "- a\n\n- b\n",
			want:  "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n",
		},
		{
			name:  "ordered list with start",
			input: "3. a\n4. b",
			want:  "<ol start=\"3\">\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			name:  "fenced code preserves content",
			input: "```go\nfunc f() {}\n```",
			want:  "<pre><code class=\"language-go\">func f() {}\n</code></pre>\n",
		},
		{
			name:  "indented code block",
			input: "    foo\n    bar",
			want:  "<pre><code>foo\nbar\n</code></pre>\n",
		},
		{
			name:  "html block",
			input: "<div>\n  <p>raw</p>\n</div>",
			want:  "<div>\n  <p>raw</p>\n</div>\n",
		},
		{
			name:  "backslash escape outside the three covered sequences passes through",
			input: `\*not emphasis\*`,
			want:  "<p>\\*not emphasis\\*</p>\n",
		},
		{
			name:  "backslash escape of the three covered sequences",
			input: `\# \> \-`,
			want:  "<p># &gt; -</p>\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ToHTML(test.input)
			if got != test.want {
				t.Errorf("ToHTML(%q) = %q; want %q", test.input, got, test.want)
			}
		})
	}
}

func TestHeadingLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		input := ""
		for i := 0; i < level; i++ {
			input += "#"
		}
		input += " heading"
		root := Parse(input)
		if root.ChildCount() != 1 {
			t.Fatalf("level %d: got %d top-level blocks; want 1", level, root.ChildCount())
		}
		h := root.Child(0)
		if h.Kind() != HeadingKind || h.Level() != level {
			t.Errorf("level %d: got kind %v level %d; want HeadingKind level %d", level, h.Kind(), h.Level(), level)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	input := "# Title\n\n- one\n- two\n\n> quote\n\n```\ncode\n```\n"
	first := ToHTML(input)
	second := ToHTML(input)
	if first != second {
		t.Errorf("ToHTML was not deterministic: %q != %q", first, second)
	}
}

// TestLeafAfterIndentedCode guards against a regression where an
// indented code block left open by Phase 5 was never closed before a
// sibling leaf rule pushed onto it, which panics because CodeKind
// cannot accept children.
func TestLeafAfterIndentedCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "atx heading",
			input: "    code\n# h\n",
			want:  "<pre><code>code\n</code></pre>\n<h1>h</h1>\n",
		},
		{
			name:  "fenced code opener",
			input: "    code\n```\nfenced\n```\n",
			want:  "<pre><code>code\n</code></pre>\n<pre><code>fenced\n</code></pre>\n",
		},
		{
			name:  "html block opener",
			input: "    code\n<div>\n",
			want:  "<pre><code>code\n</code></pre>\n<div>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ToHTML(test.input)
			if got != test.want {
				t.Errorf("ToHTML(%q) = %q; want %q", test.input, got, test.want)
			}
		})
	}
}

func TestFencedCodeBytePreservation(t *testing.T) {
	input := "```\n*not* emphasis\n---\n#not a heading\n```"
	root := Parse(input)
	if root.ChildCount() != 1 || root.Child(0).Kind() != CodeKind {
		t.Fatalf("expected a single Code block, got %d children", root.ChildCount())
	}
	want := "*not* emphasis\n---\n#not a heading\n"
	if got := root.Child(0).Text(); got != want {
		t.Errorf("fenced code text = %q; want %q", got, want)
	}
}
