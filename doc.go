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

// Package commonmark parses the block structure of a CommonMark-flavored
// Markdown document and renders it to HTML.
//
// The block parser recognises block containers (block quotes, lists, list
// items) and block leaves (ATX and Setext headings, thematic breaks,
// indented and fenced code, HTML blocks, and paragraphs). It does not run
// an inline phase: paragraph and heading content is carried as raw text
// runs, with only a small backslash-escape pass applied at render time.
//
// The entry points are [ToHTML] for the common case, and [Parse] /
// [RenderHTML] for callers that want to inspect the block tree between
// the two phases.
package commonmark
