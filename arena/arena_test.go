package arena

import "testing"

func TestNewZeroFilled(t *testing.T) {
	a := New[int](4)
	if a.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != 0 {
			t.Errorf("At(%d): got %d, want 0", i, a.At(i))
		}
	}
}

func TestGrowPreservesContents(t *testing.T) {
	a := New[byte](3)
	a.Copy(0, []byte("abc"))
	view := a.Slice(0, 3)

	a.Grow(5)

	if a.Len() != 8 {
		t.Fatalf("Len after grow: got %d, want 8", a.Len())
	}
	if got := string(a.Slice(0, 3)); got != "abc" {
		t.Errorf("contents after grow: got %q, want %q", got, "abc")
	}
	if string(view) != "abc" {
		t.Errorf("old view changed: %q", view)
	}
	for i := 3; i < 8; i++ {
		if a.At(i) != 0 {
			t.Errorf("grown element %d: got %d, want 0", i, a.At(i))
		}
	}
}

func TestGrowNonPositiveIsNoop(t *testing.T) {
	a := New[int](2)
	a.Grow(0)
	a.Grow(-3)
	if a.Len() != 2 {
		t.Errorf("Len: got %d, want 2", a.Len())
	}
}

func TestSetAndFill(t *testing.T) {
	a := New[uint8](3)
	a.Fill(127)
	a.Set(1, 'x')
	want := []uint8{127, 'x', 127}
	for i, w := range want {
		if a.At(i) != w {
			t.Errorf("At(%d): got %d, want %d", i, a.At(i), w)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a *Arena[int])
	}{
		{"At", func(a *Arena[int]) { a.At(2) }},
		{"Set", func(a *Arena[int]) { a.Set(-1, 1) }},
		{"Copy", func(a *Arena[int]) { a.Copy(1, []int{1, 2}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(New[int](2))
		})
	}
}
