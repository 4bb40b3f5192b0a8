package arena

import "github.com/pkg/errors"

// ErrStaleSavepoint is returned by Restore when the savepoint's chunk
// is no longer part of the chain, i.e. the savepoint was captured
// before an intervening Reset or an earlier Restore released it.
var ErrStaleSavepoint = errors.New("arena: stale savepoint")

// errFreed is the uniform rejection for operations on a freed arena.
var errFreed = errors.New("arena: use after Free")

// Savepoint captures an allocation position for later rollback.
// The zero Savepoint is invalid and rejected by Restore.
type Savepoint struct {
	chunk *chunk
	top   int
}

// Save captures the current head chunk and its cursor. Allocations
// made afterward can be discarded wholesale with Restore.
func (a *Arena) Save() Savepoint {
	if a.head == nil {
		return Savepoint{}
	}
	return Savepoint{chunk: a.head, top: a.head.top}
}

// Restore rolls the arena back to sp: every chunk added after the
// captured chunk is released back to the OS, the captured chunk's
// cursor rewinds to the recorded offset, and it becomes the head
// again. A stale or zero savepoint is rejected with the arena left
// unchanged.
func (a *Arena) Restore(sp Savepoint) error {
	if sp.chunk == nil {
		return ErrStaleSavepoint
	}
	if a.head == nil {
		return errFreed
	}
	found := false
	for c := a.head; c != nil; c = c.next {
		if c == sp.chunk {
			found = true
			break
		}
	}
	if !found {
		return ErrStaleSavepoint
	}
	for c := a.head; c != sp.chunk; {
		next := c.next
		releasePages(c.buf)
		c = next
	}
	a.head = sp.chunk
	a.head.top = sp.top
	return nil
}
