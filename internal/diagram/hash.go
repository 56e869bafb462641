package diagram

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration without colliding with old hashes.
const (
	DomainDiagram = "zigzag/diagram/v1"
	DomainRewrite = "zigzag/rewrite/v1"
)

// hashWithDomain computes SHA-256 with domain separation:
// SHA256(domain + 0x00 + data). The null separator prevents domain/data
// boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// DiagramHash computes the content-addressed hash of a diagram. Two
// diagrams hash equal iff they are structurally equal, so the hash is a
// valid memoization key (identity-based keys would break value semantics).
func DiagramHash(d Diagram) (string, error) {
	canonical, err := MarshalCanonical(d)
	if err != nil {
		return "", fmt.Errorf("DiagramHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDiagram, canonical), nil
}

// RewriteHash computes the content-addressed hash of a rewrite.
func RewriteHash(r Rewrite) (string, error) {
	canonical, err := MarshalCanonical(r)
	if err != nil {
		return "", fmt.Errorf("RewriteHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRewrite, canonical), nil
}

// MustDiagramHash is like DiagramHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustDiagramHash(d Diagram) string {
	h, err := DiagramHash(d)
	if err != nil {
		panic(err)
	}
	return h
}

// MustRewriteHash is like RewriteHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustRewriteHash(r Rewrite) string {
	h, err := RewriteHash(r)
	if err != nil {
		panic(err)
	}
	return h
}
