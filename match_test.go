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

import "testing"

func TestMatchThematicBreak(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"***", true},
		{"---", true},
		{"___", true},
		{"  ---", true},
		{"- - -", true},
		{"** **", true},
		{"--", false},
		{"***a", false},
		{"    ***", false}, // 4 spaces is indented code, not a break
	}
	for _, test := range tests {
		if got := matchThematicBreak(test.line); got != test.want {
			t.Errorf("matchThematicBreak(%q) = %v; want %v", test.line, got, test.want)
		}
	}
}

func TestMatchATXHeading(t *testing.T) {
	tests := []struct {
		line   string
		want   atxHeading
		wantOK bool
	}{
		{"# foo", atxHeading{level: 1, content: "foo"}, true},
		{"## foo ##", atxHeading{level: 2, content: "foo"}, true},
		{"###### foo", atxHeading{level: 6, content: "foo"}, true},
		{"####### foo", atxHeading{}, false},
		{"#", atxHeading{level: 1, content: ""}, true},
		{"#foo", atxHeading{}, false},
		{" # foo", atxHeading{level: 1, content: "foo"}, true},
	}
	for _, test := range tests {
		got, ok := matchATXHeading(test.line)
		if ok != test.wantOK || got != test.want {
			t.Errorf("matchATXHeading(%q) = %+v, %v; want %+v, %v", test.line, got, ok, test.want, test.wantOK)
		}
	}
}

func TestMatchListMarker(t *testing.T) {
	tests := []struct {
		line   string
		want   listMarker
		wantOK bool
	}{
		{"- foo", listMarker{kind: UnorderedList, char: '-', width: 1}, true},
		{"1. foo", listMarker{kind: OrderedList, char: '.', start: 1, width: 2}, true},
		{"10) foo", listMarker{kind: OrderedList, char: ')', start: 10, width: 3}, true},
		{"-foo", listMarker{}, false},
		{"-", listMarker{kind: UnorderedList, char: '-', width: 1, blank: true}, true},
	}
	for _, test := range tests {
		got, ok := matchListMarker(test.line)
		if ok != test.wantOK || got != test.want {
			t.Errorf("matchListMarker(%q) = %+v, %v; want %+v, %v", test.line, got, ok, test.want, test.wantOK)
		}
	}
}

func TestMatchCodeFence(t *testing.T) {
	open, ok := matchCodeFence("```go")
	if !ok || open.char != '`' || open.n != 3 || open.info != "go" {
		t.Fatalf("matchCodeFence(\"```go\") = %+v, %v", open, ok)
	}
	close, ok := matchCodeFence("````")
	if !ok || !open.matchesCloser(close) {
		t.Fatalf("matchCodeFence(\"````\") = %+v, %v; matchesCloser = %v", close, ok, open.matchesCloser(close))
	}
	if _, ok := matchCodeFence("``` a`b"); ok {
		t.Fatal("matchCodeFence with backtick in info string should fail for backtick fences")
	}
}

func TestMatchIndentedCode(t *testing.T) {
	content, ok := matchIndentedCode("    foo")
	if !ok || content != "foo" {
		t.Fatalf("matchIndentedCode(\"    foo\") = %q, %v; want %q, true", content, ok, "foo")
	}
	if _, ok := matchIndentedCode("   foo"); ok {
		t.Fatal("3 spaces should not be enough for indented code")
	}
	if _, ok := matchIndentedCode("    "); ok {
		t.Fatal("a blank indented line should not match")
	}
}
