package hashing

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"toolbelt/pkg/errors"
)

var reLowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data string
		seed uint64
		algo string
		want string
	}{
		{
			name: "xxh64 empty input",
			data: "",
			seed: 0,
			algo: "xxh64",
			want: "ef46db3751d8e999",
		},
		{
			name: "xxh32 empty input",
			data: "",
			seed: 0,
			algo: "xxh32",
			want: "02cc5d05",
		},
		{
			name: "algorithm name is case-insensitive",
			data: "",
			seed: 0,
			algo: "XXH64",
			want: "ef46db3751d8e999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum([]byte(tt.data), tt.seed, tt.algo)
			if err != nil {
				t.Fatalf("Sum() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Sum() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSumProperties(t *testing.T) {
	data := []byte("the quick brown fox")

	for _, algo := range []string{AlgoXXH32, AlgoXXH64} {
		a, err := Sum(data, 1, algo)
		if err != nil {
			t.Fatalf("Sum(%s) error = %v", algo, err)
		}
		b, _ := Sum(data, 1, algo)
		if a != b {
			t.Errorf("%s is not deterministic: %q != %q", algo, a, b)
		}

		c, _ := Sum(data, 2, algo)
		if a == c {
			t.Errorf("%s ignores the seed", algo)
		}

		if !reLowerHex.MatchString(a) {
			t.Errorf("Sum(%s) = %q, want lowercase hex", algo, a)
		}
	}

	if d32, _ := Sum(data, 0, AlgoXXH32); len(d32) != 8 {
		t.Errorf("xxh32 digest length = %d, want 8", len(d32))
	}
	if d64, _ := Sum(data, 0, AlgoXXH64); len(d64) != 16 {
		t.Errorf("xxh64 digest length = %d, want 16", len(d64))
	}
}

func TestSumUnsupportedAlgorithm(t *testing.T) {
	_, err := Sum([]byte("x"), 0, "md5")
	if err == nil {
		t.Fatalf("Sum() error = nil, want UNSUPPORTED")
	}
	if !errors.IsUnsupported(err) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := []byte("file hashing test content")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, algo := range []string{AlgoXXH32, AlgoXXH64} {
		want, err := Sum(content, 7, algo)
		if err != nil {
			t.Fatalf("Sum(%s) error = %v", algo, err)
		}
		got, err := SumFile(path, 7, algo)
		if err != nil {
			t.Fatalf("SumFile(%s) error = %v", algo, err)
		}
		if got != want {
			t.Errorf("SumFile(%s) = %q, want %q", algo, got, want)
		}
	}
}

func TestSumFileFailures(t *testing.T) {
	if _, err := SumFile(filepath.Join(t.TempDir(), "missing"), 0, AlgoXXH64); err == nil {
		t.Errorf("SumFile(missing) error = nil, want error")
	}

	_, err := SumFile("irrelevant", 0, "crc32")
	if err == nil {
		t.Fatalf("SumFile() error = nil, want UNSUPPORTED")
	}
	if !errors.IsUnsupported(err) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}
