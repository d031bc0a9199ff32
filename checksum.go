package savekit

import (
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
)

// ChecksumAlgorithm names a supported fingerprint algorithm.
type ChecksumAlgorithm string

const (
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
	ChecksumCRC32  ChecksumAlgorithm = "crc32"
)

// NewHasher creates a new hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumXXHash:
		return xxhash.New(), nil
	case ChecksumCRC32:
		return crc32.NewIEEE(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}

// Fingerprint returns the hex-encoded xxhash64 digest of a buffer. Used
// as a stable identifier when reporting detection results.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Checksum returns the hex-encoded digest of a buffer using the
// specified algorithm.
func Checksum(data []byte, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
