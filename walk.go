// Copyright 2024 Ross Light
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

// walk traverses a block tree in post-order, calling visit on every
// descendant of root (including root itself) after its children have
// been visited.
//
// Grounded on the teacher's generic pre/post-order Walk (walk.go), which
// traverses a Node that can be either a Block or an Inline via a shared
// interface. This spec has no separate Inline node type, so walk is
// specialized to *Block and only needs the post-order callback the
// tightening pass uses.
func walk(root *Block, visit func(*Block)) {
	for _, child := range root.children {
		walk(child, visit)
	}
	visit(root)
}
