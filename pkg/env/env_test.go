package env

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback string
		want     string
	}{
		{
			name:     "set",
			value:    "hello",
			fallback: "def",
			want:     "hello",
		},
		{
			name:     "unset uses fallback",
			value:    "",
			fallback: "def",
			want:     "def",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOOLBELT_TEST_STR", tt.value)
			if got := String("TOOLBELT_TEST_STR", tt.fallback); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{
			name:     "valid number",
			value:    "42",
			fallback: 7,
			want:     42,
		},
		{
			name:     "garbage uses fallback",
			value:    "forty-two",
			fallback: 7,
			want:     7,
		},
		{
			name:     "unset uses fallback",
			value:    "",
			fallback: 7,
			want:     7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOOLBELT_TEST_INT", tt.value)
			if got := Int("TOOLBELT_TEST_INT", tt.fallback); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TOOLBELT_TEST_BOOL", "true")
	if !Bool("TOOLBELT_TEST_BOOL", false) {
		t.Errorf("Bool() = false, want true")
	}
	t.Setenv("TOOLBELT_TEST_BOOL", "not-a-bool")
	if Bool("TOOLBELT_TEST_BOOL", false) {
		t.Errorf("Bool() = true, want fallback false")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("TOOLBELT_TEST_DUR", "150ms")
	if got := Duration("TOOLBELT_TEST_DUR", time.Second); got != 150*time.Millisecond {
		t.Errorf("Duration() = %v, want 150ms", got)
	}
	t.Setenv("TOOLBELT_TEST_DUR", "")
	if got := Duration("TOOLBELT_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("Duration() = %v, want fallback 1s", got)
	}
}
