package parse

import "testing"

func TestCursor_PeekAdvance(t *testing.T) {
	c := NewCursor("héllo")

	r, ok := c.Peek()
	if !ok || r != 'h' {
		t.Fatalf("Peek() = %q, %v; want 'h', true", r, ok)
	}

	c.Advance(2)

	if got := c.Rest(); got != "llo" {
		t.Errorf("Rest() = %q, want %q", got, "llo")
	}

	if got := c.Offset(); got != 2 {
		t.Errorf("Offset() = %d, want 2", got)
	}

	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestCursor_AdvancePastEnd(t *testing.T) {
	c := NewCursor("ab")
	c.Advance(10)

	if !c.Done() || c.Rest() != "" || c.Len() != 0 {
		t.Errorf("cursor not exhausted: rest=%q len=%d", c.Rest(), c.Len())
	}

	if _, ok := c.Peek(); ok {
		t.Error("Peek() on exhausted cursor reported a rune")
	}

	c.Advance(-1)

	if c.Offset() != 2 {
		t.Errorf("negative Advance moved cursor to %d", c.Offset())
	}
}

func TestCursor_MarkReset(t *testing.T) {
	c := NewCursor("abcdef")
	c.Advance(1)

	m := c.Mark()
	c.Advance(3)
	c.Reset(m)

	if got := c.Rest(); got != "bcdef" {
		t.Errorf("Rest() after Reset = %q, want %q", got, "bcdef")
	}

	c.Reset(Mark(100))

	if !c.Done() {
		t.Error("Reset beyond input did not clamp to end")
	}
}

func TestCursor_Position(t *testing.T) {
	c := NewCursor("ab\ncd\nef")

	tests := []struct {
		advance int
		want    Position
	}{
		{0, Position{Offset: 0, Line: 1, Column: 1}},
		{2, Position{Offset: 2, Line: 1, Column: 3}},
		{1, Position{Offset: 3, Line: 2, Column: 1}},
		{4, Position{Offset: 7, Line: 3, Column: 2}},
	}

	for _, tt := range tests {
		c.Advance(tt.advance)

		if got := c.Position(); got != tt.want {
			t.Errorf("Position() = %+v, want %+v", got, tt.want)
		}
	}
}
