package eval

import "testing"

func TestParsePrecedenceShape(t *testing.T) {
	// 2+3*4 must parse as 2+(3*4), not (2+3)*4.
	n, err := parse("2+3*4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, ok := n.(binary)
	if !ok || b.op != '+' {
		t.Fatalf("root node is %#v, want binary '+'", n)
	}
	if _, ok := b.right.(binary); !ok {
		t.Errorf("right child is %#v, want binary '*'", b.right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 10-3-2 must parse as (10-3)-2.
	n, err := parse("10-3-2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, ok := n.(binary)
	if !ok || b.op != '-' {
		t.Fatalf("root node is %#v, want binary '-'", n)
	}
	left, ok := b.left.(binary)
	if !ok || left.op != '-' {
		t.Errorf("left child is %#v, want binary '-'", b.left)
	}
	if lit, ok := b.right.(literal); !ok || float64(lit) != 2 {
		t.Errorf("right child is %#v, want literal 2", b.right)
	}
}

func TestParseRejects(t *testing.T) {
	for _, expr := range []string{
		"",
		"(",
		")",
		"2+",
		"(2",
		"2)",
		".",
		"()",
	} {
		if _, err := parse(expr); err == nil {
			t.Errorf("parse(%q) succeeded, want error", expr)
		}
	}
}

func TestParseNumberForms(t *testing.T) {
	cases := map[string]float64{
		"0":   0,
		"007": 7,
		"3.5": 3.5,
		".5":  0.5,
		"2.":  2,
	}
	for expr, want := range cases {
		n, err := parse(expr)
		if err != nil {
			t.Errorf("parse(%q) failed: %v", expr, err)
			continue
		}
		if got := n.eval(); got != want {
			t.Errorf("parse(%q).eval() = %v, want %v", expr, got, want)
		}
	}
}
