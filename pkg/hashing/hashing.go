// Package hashing computes seeded xxHash digests over byte strings and
// files, returning lowercase hex.
package hashing

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OneOfOne/xxhash"

	"toolbelt/pkg/errors"
)

const (
	AlgoXXH32 = "xxh32"
	AlgoXXH64 = "xxh64"
)

// Sum returns the seeded digest of data for the named algorithm. An
// unknown algorithm fails with an UNSUPPORTED error.
func Sum(data []byte, seed uint64, algo string) (string, error) {
	switch strings.ToLower(algo) {
	case AlgoXXH32:
		return fmt.Sprintf("%08x", xxhash.Checksum32S(data, uint32(seed))), nil
	case AlgoXXH64:
		return fmt.Sprintf("%016x", xxhash.Checksum64S(data, seed)), nil
	}
	return "", errors.Unsupported(fmt.Sprintf("hash algorithm %q", algo))
}

// SumFile streams the file at path through the named algorithm.
func SumFile(path string, seed uint64, algo string) (string, error) {
	algo = strings.ToLower(algo)
	if algo != AlgoXXH32 && algo != AlgoXXH64 {
		return "", errors.Unsupported(fmt.Sprintf("hash algorithm %q", algo))
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.Internal(fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	if algo == AlgoXXH32 {
		h := xxhash.NewS32(uint32(seed))
		if _, err := io.Copy(h, f); err != nil {
			return "", errors.Internal(fmt.Sprintf("reading %s", path), err)
		}
		return fmt.Sprintf("%08x", h.Sum32()), nil
	}

	h := xxhash.NewS64(seed)
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Internal(fmt.Sprintf("reading %s", path), err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
