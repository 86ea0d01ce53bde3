// internal/util/util_test.go
package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := TruncateRunes("abcdefgh", 4); got != "abcd…" {
		t.Fatalf("expected truncated string with ellipsis, got %q", got)
	}
	if got := TruncateRunes("資料集名稱", 3); got != "資料集…" {
		t.Fatalf("expected rune-aware truncation, got %q", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Fatal("Min misbehaved")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Fatal("Max misbehaved")
	}
}
