package domain

import (
	"regexp"

	"github.com/ethereum/go-ethereum/crypto"
)

// StoredContent is an analyzed article kept for retrieval by hash.
type StoredContent struct {
	Hash      string `json:"hash"`
	Content   string `json:"content"`
	Title     string `json:"title"`
	SourceURL string `json:"sourceUrl"`
	Timestamp string `json:"timestamp"`
}

// StorageStats describes the content store.
type StorageStats struct {
	TotalItems   int    `json:"totalItems"`
	StoragePath  string `json:"storagePath"`
	LastModified string `json:"lastModified,omitempty"`
}

// ContentHash is the Keccak-256 of title, content and source URL
// concatenated, hex encoded with a 0x prefix. It matches the hash the
// news registry contract stores.
func ContentHash(title, content, sourceURL string) string {
	return crypto.Keccak256Hash([]byte(title + content + sourceURL)).Hex()
}

var contentHashRe = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

// IsValidContentHash reports whether h is a 0x-prefixed 32-byte hex string.
func IsValidContentHash(h string) bool {
	return contentHashRe.MatchString(h)
}
