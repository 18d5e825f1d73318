// internal/store/script.go
package store

import (
	"crypto/sha1"
	"encoding/hex"
)

// Script is an atomic server-side script identified by the SHA1 of its
// source, mirroring how Redis caches scripts. Callers execute by digest
// and the store transparently re-registers the body on a cache miss.
type Script struct {
	src  string
	hash string
}

// NewScript precomputes the digest for src.
func NewScript(src string) *Script {
	sum := sha1.Sum([]byte(src))
	return &Script{src: src, hash: hex.EncodeToString(sum[:])}
}

// Src returns the script body.
func (s *Script) Src() string { return s.src }

// Hash returns the hex SHA1 digest the script is registered under.
func (s *Script) Hash() string { return s.hash }
