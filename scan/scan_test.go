package scan

import (
	"errors"
	"testing"
)

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pos   int64
		limit int64
		want  int64
	}{
		{"no whitespace", "abc", 0, 3, 0},
		{"leading spaces", "   abc", 0, 6, 3},
		{"mixed whitespace", " \t\n\r\fx", 0, 6, 5},
		{"stops at limit", "    x", 0, 2, 2},
		{"already at limit", "  x", 2, 2, 2},
		{"limit beyond text", "  ", 0, 100, 2},
		{"negative pos clamps", "  x", -5, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkipSpace([]byte(tt.text), tt.pos, tt.limit)
			if got != tt.want {
				t.Errorf("SkipSpace(%q, %d, %d) = %d, want %d", tt.text, tt.pos, tt.limit, got, tt.want)
			}
		})
	}
}

func TestAtomSymbol(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int64
		want int64
	}{
		{"single symbol", "foo", 0, 3},
		{"stops at space", "foo bar", 0, 3},
		{"stops at open bracket", "foo(bar)", 0, 3},
		{"stops at close bracket", "foo)", 0, 3},
		{"stops at quote", `foo"s"`, 0, 3},
		{"mid-text", "foo bar", 4, 7},
		{"punctuation run", "a+b*c", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Atom([]byte(tt.text), tt.pos)
			if err != nil {
				t.Fatalf("Atom(%q, %d) error = %v", tt.text, tt.pos, err)
			}
			if got != tt.want {
				t.Errorf("Atom(%q, %d) = %d, want %d", tt.text, tt.pos, got, tt.want)
			}
		})
	}
}

func TestAtomGroup(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int64
		want int64
	}{
		{"simple parens", "(a b)", 0, 5},
		{"nested same kind", "((a) b)", 0, 7},
		{"mixed brackets", "([{x}])", 0, 7},
		{"group with string", `("(" x)`, 0, 7},
		{"group mid-text", "a (b) c", 2, 5},
		{"trailing text ignored", "(a) b", 0, 3},
		{"escaped quote in string", `("\"" x)`, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Atom([]byte(tt.text), tt.pos)
			if err != nil {
				t.Fatalf("Atom(%q, %d) error = %v", tt.text, tt.pos, err)
			}
			if got != tt.want {
				t.Errorf("Atom(%q, %d) = %d, want %d", tt.text, tt.pos, got, tt.want)
			}
		})
	}
}

func TestAtomString(t *testing.T) {
	got, err := Atom([]byte(`"hello \" world" x`), 0)
	if err != nil {
		t.Fatalf("Atom() error = %v", err)
	}
	if got != 16 {
		t.Errorf("Atom() = %d, want 16", got)
	}
}

func TestAtomErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pos     int64
		wantErr error
	}{
		{"empty text", "", 0, ErrNoAtom},
		{"pos at end", "abc", 3, ErrNoAtom},
		{"pos past end", "abc", 10, ErrNoAtom},
		{"bare closer", ") rest", 0, ErrUnmatchedClose},
		{"closer of enclosing unit", "a) b", 1, ErrUnmatchedClose},
		{"unterminated group", "(a b", 0, ErrUnterminated},
		{"unterminated nested group", "(a (b)", 0, ErrUnterminated},
		{"unterminated string", `"abc`, 0, ErrUnterminated},
		{"unterminated string in group", `("abc`, 0, ErrUnterminated},
		{"mismatched closer", "(a]", 0, ErrMismatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Atom([]byte(tt.text), tt.pos)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Atom(%q, %d) error = %v, want %v", tt.text, tt.pos, err, tt.wantErr)
			}
		})
	}
}

func TestAtomAlwaysAdvances(t *testing.T) {
	texts := []string{"x", "(a)", `"s"`, "a b c", "{[()]}"}
	for _, text := range texts {
		pos := int64(0)
		for pos < int64(len(text)) {
			pos = SkipSpace([]byte(text), pos, int64(len(text)))
			if pos >= int64(len(text)) {
				break
			}
			next, err := Atom([]byte(text), pos)
			if err != nil {
				t.Fatalf("Atom(%q, %d) error = %v", text, pos, err)
			}
			if next <= pos {
				t.Fatalf("Atom(%q, %d) = %d, did not advance", text, pos, next)
			}
			pos = next
		}
	}
}
