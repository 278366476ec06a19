// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap of keyed entries.
//
// Each key appears in the heap at most once, and the heap keeps an
// index from key to position so that the priority of an entry can be
// changed in place. This makes it suitable as the fringe of a
// best-first search, where the priority of a discovered node drops as
// cheaper routes to it are found.
package heap

// Keyed implements a binary heap of (key, priority) entries.
// The zero value is not usable; call NewKeyed.
type Keyed[K comparable, P any] struct {
	entries []entry[K, P]
	index   map[K]int
	less    func(P, P) bool
}

type entry[K comparable, P any] struct {
	key K
	pri P
}

// NewKeyed returns an empty heap ordered by less. The entry whose
// priority is less than all the others is at the top of the heap.
func NewKeyed[K comparable, P any](less func(P, P) bool) *Keyed[K, P] {
	return &Keyed[K, P]{
		index: make(map[K]int),
		less:  less,
	}
}

// Len returns the number of entries in the heap.
func (h *Keyed[K, P]) Len() int {
	return len(h.entries)
}

// Contains reports whether k is in the heap.
func (h *Keyed[K, P]) Contains(k K) bool {
	_, ok := h.index[k]
	return ok
}

// Priority returns the priority of k and whether k is in the heap.
func (h *Keyed[K, P]) Priority(k K) (P, bool) {
	i, ok := h.index[k]
	if !ok {
		var zero P
		return zero, false
	}
	return h.entries[i].pri, true
}

// Push adds k to the heap with priority p. If k is already present,
// its priority is replaced by p and the heap ordering re-established.
// The complexity is O(log n) where n = h.Len().
func (h *Keyed[K, P]) Push(k K, p P) {
	if i, ok := h.index[k]; ok {
		h.entries[i].pri = p
		h.fix(i)
		return
	}
	h.entries = append(h.entries, entry[K, P]{key: k, pri: p})
	i := len(h.entries) - 1
	h.index[k] = i
	h.up(i)
}

// Peek returns the minimum entry without removing it. The final result
// is false if the heap is empty.
func (h *Keyed[K, P]) Peek() (K, P, bool) {
	if len(h.entries) == 0 {
		var (
			k K
			p P
		)
		return k, p, false
	}
	e := h.entries[0]
	return e.key, e.pri, true
}

// Pop removes and returns the minimum entry (according to the less
// function) from the heap. It panics if the heap is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Keyed[K, P]) Pop() (K, P) {
	if len(h.entries) == 0 {
		panic("heap: Pop called on empty heap")
	}
	e := h.removeAt(0)
	return e.key, e.pri
}

// Remove removes k from the heap, reporting whether it was present.
// The complexity is O(log n) where n = h.Len().
func (h *Keyed[K, P]) Remove(k K) bool {
	i, ok := h.index[k]
	if !ok {
		return false
	}
	h.removeAt(i)
	return true
}

func (h *Keyed[K, P]) removeAt(i int) entry[K, P] {
	n := len(h.entries) - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	e := h.entries[n]
	h.entries = h.entries[:n]
	delete(h.index, e.key)
	return e
}

func (h *Keyed[K, P]) fix(i int) {
	if !h.down(i, len(h.entries)) {
		h.up(i)
	}
}

func (h *Keyed[K, P]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].key] = i
	h.index[h.entries[j].key] = j
}

func (h *Keyed[K, P]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.entries[j].pri, h.entries[i].pri) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Keyed[K, P]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.entries[j2].pri, h.entries[j1].pri) {
			j = j2 // right child
		}
		if !h.less(h.entries[j].pri, h.entries[i].pri) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
