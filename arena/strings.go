package arena

// Strdup copies s plus a terminating NUL into arena storage, so the
// copy's lifetime is independent of s. The returned slice has length
// len(s)+1. Returns nil if allocation fails.
func (a *Arena) Strdup(s string) []byte {
	p := a.Alloc(len(s) + 1)
	if p == nil {
		return nil
	}
	copy(p, s)
	p[len(s)] = 0
	return p
}

// Strndup copies the first n bytes of b plus a forced terminating NUL
// into arena storage. n is clamped to len(b). Returns nil if b is nil,
// n is negative, or allocation fails.
func (a *Arena) Strndup(b []byte, n int) []byte {
	if b == nil || n < 0 {
		return nil
	}
	if n > len(b) {
		n = len(b)
	}
	p := a.Alloc(n + 1)
	if p == nil {
		return nil
	}
	copy(p, b[:n])
	p[n] = 0
	return p
}
