package arena

import (
	"runtime"
	"unsafe"
)

// NewOf returns a pointer to a zeroed T stored inside the arena.
// The pointer is valid until the storage is reclaimed by Reset,
// Restore or Free. Returns nil for zero-sized types or on allocation
// failure.
func NewOf[T any](a *Arena) *T {
	var zero T
	b := a.AllocZeroed(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// NewUninitialized returns a *T located in the arena without zeroing
// the memory. Faster than NewOf but the contents are undefined; ensure
// every field is assigned before use.
func NewUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// Slice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0 or on
// allocation failure.
func Slice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)) * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// SliceZeroed allocates a slice of n elements of type T with zeroed
// memory.
func SliceZeroed[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocZeroed(int(unsafe.Sizeof(zero)) * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// KeepAlive returns t and calls runtime.KeepAlive on the arena,
// preventing the arena (and with it the chunk backing t) from being
// collected while the pointer is still in use in unsafe code.
func KeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
