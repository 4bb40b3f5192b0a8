//go:build !unix

package arena

import "os"

// reservePages allocates a page-rounded region from the Go heap on
// platforms without an mmap wrapper in syscall.
func reservePages(n int) ([]byte, error) {
	page := os.Getpagesize()
	n = (n + page - 1) &^ (page - 1)
	return make([]byte, n), nil
}

// releasePages drops the reference; the Go heap reclaims the region.
func releasePages([]byte) {}
