// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"cmp"
	"slices"
)

type node struct {
	comment  Comment
	children []int64
}

// Tree 以 ID 为索引的评论树，节点之间只通过 ID 关联
type Tree struct {
	nodes map[int64]*node
	roots []int64
}

// NewTree 父评论不在 cs 中的评论会被当作根
func NewTree(cs []Comment) *Tree {
	sorted := slices.Clone(cs)
	slices.SortFunc(sorted, func(a, b Comment) int {
		return cmp.Compare(a.ID, b.ID)
	})
	t := &Tree{nodes: make(map[int64]*node, len(sorted))}
	for _, c := range sorted {
		c.Replies = nil
		t.nodes[c.ID] = &node{comment: c}
	}
	// 按 ID 升序挂载，子评论天然是评论时间顺序
	for _, c := range sorted {
		if p, ok := t.nodes[c.ParentID]; ok && c.ParentID != 0 {
			p.children = append(p.children, c.ID)
			continue
		}
		t.roots = append(t.roots, c.ID)
	}
	return t
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Roots 所有根及其回复
func (t *Tree) Roots() []Comment {
	res := make([]Comment, 0, len(t.roots))
	for _, id := range t.roots {
		res = append(res, t.build(id))
	}
	return res
}

// Subtree 以 id 为根的子树
func (t *Tree) Subtree(id int64) (Comment, bool) {
	if _, ok := t.nodes[id]; !ok {
		return Comment{}, false
	}
	return t.build(id), true
}

// Descendants id 本身以及它的所有后代，先序
func (t *Tree) Descendants(id int64) []int64 {
	if _, ok := t.nodes[id]; !ok {
		return nil
	}
	var res []int64
	stack := []int64{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, cur)
		children := t.nodes[cur].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return res
}

func (t *Tree) build(id int64) Comment {
	n := t.nodes[id]
	c := n.comment
	c.Replies = make([]Comment, 0, len(n.children))
	for _, child := range n.children {
		c.Replies = append(c.Replies, t.build(child))
	}
	return c
}
