package scan

import (
	"bytes"
	"strings"
	"testing"
)

func TestIndexByte(t *testing.T) {
	tests := []struct {
		name string
		s    string
		c    byte
		want int
	}{
		{"empty", "", 'a', -1},
		{"short_found", "hello", 'l', 2},
		{"short_missing", "hello", 'z', -1},
		{"first_chunk", "abcdefghij", 'c', 2},
		{"second_chunk", "abcdefghij", 'i', 8},
		{"tail", "abcdefghijk", 'k', 10},
		{"zero_byte", "abc\x00defgh", 0, 3},
		{"high_byte", "abcdefg\xffh", 0xff, 7},
		{"after_borrow", "\x01\x00\x01\x01\x01\x01\x01\x01", 0x01, 0},
		{"long", strings.Repeat("x", 1000) + "y", 'y', 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexByte([]byte(tt.s), tt.c)
			if got != tt.want {
				t.Errorf("IndexByte(%q, %q) = %d, want %d", tt.s, tt.c, got, tt.want)
			}
			if std := bytes.IndexByte([]byte(tt.s), tt.c); std != got {
				t.Errorf("IndexByte != stdlib: got %d, stdlib %d", got, std)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_haystack", "", "x", -1},
		{"both_empty", "", "", 0},
		{"single_found", "hello", "e", 1},
		{"at_start", "hello world", "hello", 0},
		{"at_end", "hello world", "world", 6},
		{"not_found", "hello world", "xyz", -1},
		{"needle_too_long", "hi", "hello", -1},
		{"repeated", "aaaaaabaaaa", "aab", 4},
		{"rare_at_end", "zzzzqzzzzq", "zq", 3},
		{"rare_not_verified", "q zzzz zq", "zq", 7},
		{"http_method", "GET /index.html HTTP/1.1", "HTTP", 16},
		{"utf8", "поиск подстроки", "строки", 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Index([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("Index(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if std := strings.Index(tt.haystack, tt.needle); std != got {
				t.Errorf("Index != stdlib: got %d, stdlib %d", got, std)
			}
		})
	}
}

func TestRarestByte(t *testing.T) {
	b, idx := RarestByte([]byte("the quiz"))
	if b != 'q' && b != 'z' {
		t.Errorf("RarestByte = %q at %d, want 'q' or 'z'", b, idx)
	}
	if b, idx := RarestByte([]byte("a\xd0b")); b != 0xd0 || idx != 1 {
		t.Errorf("RarestByte = %#x at %d, want 0xd0 at 1", b, idx)
	}
	if Rank(' ') <= Rank('e') || Rank('e') <= Rank('z') {
		t.Error("Rank ordering broken for ' ', 'e', 'z'")
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"hello", true},
		{"hello, world and more", true},
		{"héllo", false},
		{"0123456789abcdef\x80", false},
		{"алгоритм", false},
	}

	for _, tt := range tests {
		if got := IsASCII([]byte(tt.s)); got != tt.want {
			t.Errorf("IsASCII(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func FuzzIndex(f *testing.F) {
	f.Add("hello world", "wor")
	f.Add("aaaaaabaaaa", "aab")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, haystack, needle string) {
		got := Index([]byte(haystack), []byte(needle))
		if want := strings.Index(haystack, needle); got != want {
			t.Errorf("Index(%q, %q) = %d, want %d", haystack, needle, got, want)
		}
	})
}
