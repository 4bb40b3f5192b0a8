//go:build unix

package arena

import "syscall"

// reservePages maps an anonymous, private, read-write region of at
// least n bytes, rounded up to the page size. The kernel returns the
// region page-aligned and zero-filled.
func reservePages(n int) ([]byte, error) {
	page := syscall.Getpagesize()
	n = (n + page - 1) &^ (page - 1)
	return syscall.Mmap(-1, 0, n,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_ANON|syscall.MAP_PRIVATE)
}

// releasePages returns a region obtained from reservePages to the OS.
func releasePages(b []byte) {
	_ = syscall.Munmap(b)
}
