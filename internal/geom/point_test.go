package geom

import "testing"

func TestPoint_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		expected string
	}{
		{name: "integers", p: Point{7, 2}, expected: "(7, 2)"},
		{name: "fractions", p: Point{0.123456, 3.5}, expected: "(0.1235, 3.5)"},
		{name: "empty", p: Point{}, expected: "()"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.p.String(); got != test.expected {
				t.Errorf("string representation got: %q, expected: %q", got, test.expected)
			}
		})
	}
}

func TestAccessor(t *testing.T) {
	p := Point{4, 7, 9}
	for d := range p {
		if got := Accessor.Dim(p, d); got != p[d] {
			t.Errorf("accessor for dimension %d got: %f, expected: %f", d, got, p[d])
		}
	}
}

func TestPoint_Copy(t *testing.T) {
	p := Point{1, 2, 3}
	cp := p.Copy()
	cp[0] = 9
	if p[0] != 1 {
		t.Errorf("copy shares memory with the source, source got: %v", p)
	}
	if len(cp) != len(p) || cp[1] != 2 || cp[2] != 3 {
		t.Errorf("copy got: %v, expected: [9 2 3]", cp)
	}
}
