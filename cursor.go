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

// A cursor holds the root of a block tree and the open path: a sequence
// of child indices descending from root that identifies the currently
// open block. Every node not on the path is closed and must not be
// mutated.
//
// Grounded on the teacher's Block/container-stack handling in blocks.go
// (BlockParser threads a stack of open containers through openNewBlocks/
// descendOpenBlocks) and on the cursor described in original_source's
// Tree (lib.rs): cur_mut/parent_mut/push/pop/advance/remove walking a
// Vec<usize> path from the root on every call. This spec's cursor keeps
// that same shape, since it keeps the implementation free of parent
// pointers or shared mutable references, which plays well with Go's
// garbage collector and avoids retaining borrowed references across line
// iterations.
type cursor struct {
	root *Block
	path []int
}

func newCursor() *cursor {
	return &cursor{root: newRoot()}
}

// nodeAt returns the block reached by following path[:n] from the root.
func (c *cursor) nodeAt(n int) *Block {
	b := c.root
	for _, i := range c.path[:n] {
		b = b.children[i]
	}
	return b
}

// current returns the block at the end of the open path.
func (c *cursor) current() *Block {
	return c.nodeAt(len(c.path))
}

// parent returns the block one level above current, or the root if
// current is already the root.
func (c *cursor) parent() *Block {
	if len(c.path) == 0 {
		return c.root
	}
	return c.nodeAt(len(c.path) - 1)
}

// depth returns the length of the open path (0 means current is root).
func (c *cursor) depth() int {
	return len(c.path)
}

// push appends a new block as the last child of current and descends
// into it. It panics if current cannot accept children.
func (c *cursor) push(b *Block) {
	cur := c.current()
	if !cur.acceptsChildren() {
		panic("commonmark: push onto a block that cannot accept children: " + cur.Kind().String())
	}
	cur.children = append(cur.children, b)
	c.path = append(c.path, len(cur.children)-1)
}

// pop ascends one level, sealing the block that was current.
func (c *cursor) pop() {
	if len(c.path) == 0 {
		panic("commonmark: pop at root")
	}
	c.path = c.path[:len(c.path)-1]
}

// popTo ascends until the open path has length n.
func (c *cursor) popTo(n int) {
	for len(c.path) > n {
		c.pop()
	}
}

// advance descends into the last child of current without having just
// pushed it; used to re-enter a container during lazy-continuation
// fallback.
func (c *cursor) advance() {
	cur := c.current()
	if !cur.acceptsChildren() {
		panic("commonmark: advance onto a block that cannot accept children: " + cur.Kind().String())
	}
	if len(cur.children) == 0 {
		panic("commonmark: advance with no children")
	}
	c.path = append(c.path, len(cur.children)-1)
}

// remove drops current from its parent's children and ascends.
func (c *cursor) remove() {
	p := c.parent()
	i := c.path[len(c.path)-1]
	p.children = append(p.children[:i], p.children[i+1:]...)
	c.path = c.path[:len(c.path)-1]
}
