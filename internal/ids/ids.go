// Package ids hands out document-unique element identifiers.
package ids

import "strconv"

// Allocator returns identifiers that are unique within one print. It is not
// safe for concurrent use; each print owns its own.
type Allocator struct {
	taken map[string]struct{}
	next  map[string]int
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	a := &Allocator{}
	a.Reset()
	return a
}

// Reserve marks ids as taken, typically the ids already present in the
// document, so generated ones never collide with them.
func (a *Allocator) Reserve(ids ...string) {
	for _, id := range ids {
		if id != "" {
			a.taken[id] = struct{}{}
		}
	}
}

// NextUnique returns prefix the first time, then prefix-2, prefix-3, and so
// on, skipping anything reserved or already handed out.
func (a *Allocator) NextUnique(prefix string) string {
	n := a.next[prefix]
	for {
		n++
		id := prefix
		if n > 1 {
			id = prefix + "-" + strconv.Itoa(n)
		}
		if _, ok := a.taken[id]; !ok {
			a.next[prefix] = n
			a.taken[id] = struct{}{}
			return id
		}
	}
}

// Reset forgets every reserved and allocated id.
func (a *Allocator) Reset() {
	a.taken = make(map[string]struct{})
	a.next = make(map[string]int)
}
