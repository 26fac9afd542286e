package pkg

import (
	"strings"
	"testing"
)

func TestRandString(t *testing.T) {
	code := RandString(8)
	if len(code) != 8 {
		t.Fatalf("got length %d, want 8", len(code))
	}
	for _, c := range code {
		if !strings.ContainsRune(charset, c) {
			t.Errorf("character %q not in charset", c)
		}
	}
}

func TestRandStringEmpty(t *testing.T) {
	if code := RandString(0); code != "" {
		t.Errorf("got %q, want empty string", code)
	}
}
