package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// InputFingerprint is the hash of a run's canonical input JSON. Two runs
// with the same fingerprint must score to byte-identical reports.
type InputFingerprint Hash

// NewInputFingerprint hashes canonical input bytes.
func NewInputFingerprint(data []byte) InputFingerprint {
	return InputFingerprint(NewHash(data))
}

func (f InputFingerprint) String() string { return Hash(f).String() }
