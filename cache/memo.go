// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"sync"

	"github.com/gogpu/glyphband"
)

// DefaultMemoSize is the number of fonts kept in memory by default.
const DefaultMemoSize = 8

// memoNode is an entry of the memo's recency list. Head is the most
// recently used.
type memoNode struct {
	key  Key
	data *glyphband.FontDrawingData
	prev *memoNode
	next *memoNode
}

// memo is an in-process LRU of compiled fonts.
//
// memo is safe for concurrent use.
type memo struct {
	mu       sync.Mutex
	entries  map[Key]*memoNode
	head     *memoNode
	tail     *memoNode
	capacity int
}

// newMemo creates a memo holding at most capacity fonts. A capacity of 0
// disables the memo.
func newMemo(capacity int) *memo {
	return &memo{
		entries:  make(map[Key]*memoNode),
		capacity: capacity,
	}
}

// get returns the data for key and marks it most recently used.
func (m *memo) get(key Key) (*glyphband.FontDrawingData, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	m.moveToFront(node)
	return node.data, true
}

// put stores data for key, evicting the least recently used font when the
// memo is full.
func (m *memo) put(key Key, data *glyphband.FontDrawingData) {
	if m.capacity <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if node, ok := m.entries[key]; ok {
		node.data = data
		m.moveToFront(node)
		return
	}

	node := &memoNode{key: key, data: data}
	m.pushFront(node)
	m.entries[key] = node

	for len(m.entries) > m.capacity {
		oldest := m.tail
		m.unlink(oldest)
		delete(m.entries, oldest.key)
	}
}

// remove drops key from the memo.
func (m *memo) remove(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if node, ok := m.entries[key]; ok {
		m.unlink(node)
		delete(m.entries, key)
	}
}

// len returns the number of fonts in the memo.
func (m *memo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *memo) pushFront(node *memoNode) {
	node.prev = nil
	node.next = m.head
	if m.head != nil {
		m.head.prev = node
	}
	m.head = node
	if m.tail == nil {
		m.tail = node
	}
}

func (m *memo) moveToFront(node *memoNode) {
	if node == m.head {
		return
	}
	m.unlink(node)
	m.pushFront(node)
}

// unlink removes node from the list and clears its links.
func (m *memo) unlink(node *memoNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		m.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		m.tail = node.prev
	}
	node.prev = nil
	node.next = nil
}
