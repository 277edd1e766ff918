package util

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"photo.png", "photo.png", false},
		{"  photo.png  ", "photo.png", false},
		{"a/b.png", "a_b.png", false},
		{`a\b.png`, "a_b.png", false},
		{"../etc/passwd", "", true},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("SanitizeFileName(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeFileName(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileNameTruncatesOverlongNames(t *testing.T) {
	long := strings.Repeat("a", 200) + ".png"
	got, err := SanitizeFileName(long)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if len(got) != maxFileNameLen {
		t.Errorf("len = %d, want %d", len(got), maxFileNameLen)
	}
	// The extension survives truncation.
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("got %q, want .png suffix", got)
	}
}

func TestHashUserKeyIsStableAndSafe(t *testing.T) {
	a := HashUserKey("guest:alice")
	b := HashUserKey("guest:alice")
	if a != b {
		t.Error("hash not deterministic")
	}
	if a == HashUserKey("guest:bob") {
		t.Error("distinct users collide")
	}
	if len(a) != 64 {
		t.Errorf("len = %d, want 64 hex chars", len(a))
	}
}
