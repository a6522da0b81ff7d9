package security

import (
	"strings"
	"testing"
)

func TestDigestDeterministic(t *testing.T) {
	first := Digest("hunter2", "abc123")
	second := Digest("hunter2", "abc123")
	if first != second {
		t.Fatalf("digest not deterministic: %q vs %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first != strings.ToLower(first) {
		t.Fatalf("expected lowercase hex, got %q", first)
	}
	for _, c := range first {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("non-hex character %q in digest", c)
		}
	}
}

func TestDigestChangesWithEitherInput(t *testing.T) {
	base := Digest("hunter2", "abc123")
	if Digest("hunter3", "abc123") == base {
		t.Fatal("changing secret did not change digest")
	}
	if Digest("hunter2", "abc124") == base {
		t.Fatal("changing salt did not change digest")
	}
}

func TestDigestSeparatesSecretAndSalt(t *testing.T) {
	// Concatenation order is secret then salt; the split point matters
	// only through the byte stream, so these two must agree.
	if Digest("ab", "c") != Digest("a", "bc") {
		t.Fatal("digest must hash the concatenated byte stream")
	}
}

func TestEncodeDecodeTokenRoundTrip(t *testing.T) {
	for _, raw := range []string{"", "hunter2", "6ee4a469cd4e91053847f5d3fcb61dbcc91e8f0ef10be7293d624fbd5e4bb16e"} {
		stored := EncodeToken(raw)
		got, err := DecodeToken(stored)
		if err != nil {
			t.Fatalf("decode %q: %v", stored, err)
		}
		if got != raw {
			t.Fatalf("round trip mismatch: %q != %q", got, raw)
		}
	}
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	if _, err := DecodeToken("not-base64!!"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestVerifyToken(t *testing.T) {
	stored := EncodeToken("hunter2")
	salt := "abc123"
	attempt := Digest("hunter2", salt)

	if !VerifyToken(stored, salt, attempt) {
		t.Fatal("expected correct attempt to verify")
	}

	// Any single differing character must fail.
	for i := range attempt {
		bad := []byte(attempt)
		if bad[i] == 'a' {
			bad[i] = 'b'
		} else {
			bad[i] = 'a'
		}
		if VerifyToken(stored, salt, string(bad)) {
			t.Fatalf("expected mutated attempt at index %d to fail", i)
		}
	}

	if VerifyToken(stored, "abc124", attempt) {
		t.Fatal("expected wrong salt to fail")
	}
	if VerifyToken("not-base64!!", salt, attempt) {
		t.Fatal("expected undecodable stored token to fail")
	}
}
