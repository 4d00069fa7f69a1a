package shape

import (
	"testing"
)

var allKinds = []Kind{KindI, KindJ, KindL, KindS, KindZ, KindT, KindO}

func TestTemplates(t *testing.T) {
	fills := make(map[int]bool)
	for _, k := range allKinds {
		s := New(k)

		n := s.Size()
		for y := range s {
			if len(s[y]) != n {
				t.Errorf("template %s is not square: row %d has %d cells, want %d", k, y, len(s[y]), n)
			}
		}

		filled := 0
		for y := range s {
			for x := range s[y] {
				if s[y][x] != 0 && s[y][x] != 1 {
					t.Errorf("template %s contains cell value %d, want 0 or 1", k, s[y][x])
				}
				if s[y][x] != 0 {
					filled++
				}
			}
		}
		if filled != 4 {
			t.Errorf("template %s has %d filled cells, want 4", k, filled)
		}

		fill := k.Fill()
		if fill < 1 || fill > 7 {
			t.Errorf("fill code for %s is %d, want 1-7", k, fill)
		}
		if fills[fill] {
			t.Errorf("fill code %d assigned to more than one kind", fill)
		}
		fills[fill] = true
	}
}

func TestNewReturnsCopy(t *testing.T) {
	a := New(KindT)
	a[0][0] = 9

	b := New(KindT)
	if b[0][0] != 0 {
		t.Error("mutating a working copy changed the template")
	}
}

func TestRotatedClockwise(t *testing.T) {
	got := New(KindJ).Rotated()

	want := Shape{
		{0, 1, 1},
		{0, 1, 0},
		{0, 1, 0}}

	if !got.Equal(want) {
		t.Errorf("rotating J clockwise produced %v, want %v", got, want)
	}
}

func TestRotationOrderFour(t *testing.T) {
	for _, k := range allKinds {
		original := New(k)

		s := New(k)
		for i := 0; i < 4; i++ {
			s = s.Rotated()
		}

		if !s.Equal(original) {
			t.Errorf("rotating %s four times produced %v, want original %v", k, s, original)
		}
	}
}

func BenchmarkRotated(b *testing.B) {
	s := New(KindI)

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s = s.Rotated()
	}
}
