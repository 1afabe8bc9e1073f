// Package random generates low-stakes identifiers.
//
// String draws from a PRNG seeded with wall-clock time mixed with an
// environment-derived value. It is deliberately non-cryptographic and must
// not be used for security-sensitive tokens; callers needing
// collision-resistant identifiers should use UUID instead.
package random

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"toolbelt/pkg/env"
)

const (
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	alphanumeric = letters + digits
)

// String returns a string of exactly length characters. With numericOnly
// set every character is a digit; otherwise the first character is forced
// to be an ASCII letter and the rest are alphanumeric.
func String(length int, numericOnly bool) string {
	if length <= 0 {
		return ""
	}

	rng := rand.New(rand.NewSource(seed()))
	out := make([]byte, length)

	if numericOnly {
		for i := range out {
			out[i] = digits[rng.Intn(len(digits))]
		}
		return string(out)
	}

	out[0] = letters[rng.Intn(len(letters))]
	for i := 1; i < length; i++ {
		out[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}
	return string(out)
}

// UUID returns a random RFC 4122 identifier for callers that need
// collision resistance rather than the String character distribution.
func UUID() string {
	return uuid.NewString()
}

// seed mixes the clock with a stable environment path value so concurrent
// processes started in the same nanosecond still diverge.
func seed() int64 {
	h := fnv.New64a()
	h.Write([]byte(env.String("HOSTNAME", "")))
	h.Write([]byte(env.String("PWD", "/")))
	return time.Now().UnixNano() ^ int64(h.Sum64())
}
