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

// tighten walks the completed tree and flattens the Paragraph children of
// every ListItem belonging to a Tight list: the Paragraph node is removed
// and its own children are spliced into the item in its place, so a tight
// list's items render their content without a wrapping <p>.
//
// Grounded on original_source's tighten (lib.rs), which performs the same
// splice by repeatedly popping the paragraph's last child and re-inserting
// it at the paragraph's old index; this version builds the replacement
// slice directly instead, which is the more natural Go idiom for it.
func tighten(root *Block) {
	walk(root, func(b *Block) {
		if b.kind != ListKind || b.proximity != Tight {
			return
		}
		for _, item := range b.children {
			flattenTightItem(item)
		}
	})
}

func flattenTightItem(item *Block) {
	flattened := make([]*Block, 0, len(item.children))
	for _, child := range item.children {
		if child.kind == ParagraphKind {
			flattened = append(flattened, child.children...)
		} else {
			flattened = append(flattened, child)
		}
	}
	item.children = flattened
}
