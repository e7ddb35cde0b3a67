package pyexpr

import "testing"

func TestValidExpressions(t *testing.T) {
	cases := []string{
		"1 + 1",
		"x",
		"x.mean()",
		"len([1, 2, 3])",
		"{'a': 1}",
		"{1, 2}",
		"(1, 2)",
		"1,",
		"-x",
		"~n",
		"math.pi",
		"f(g(x), 2)",
		"a if b else c",
		"lambda x: x + 1",
		"[i for i in range(3)]",
		"{k: v for k, v in pairs}",
		"'a' 'b'",
		"f\"{x}\"",
		"x[1:2]",
		"a and not b",
		"1 < 2",
		"1e-5",
		"None",
		"x in xs",
		"1 + 1  # comment",
	}
	for _, src := range cases {
		if !Valid(src) {
			t.Errorf("Valid(%q) = false, want true", src)
		}
	}
}

func TestInvalidExpressions(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"import os",
		"from os import path",
		"return 1",
		"pass",
		"del x",
		"raise ValueError('boom')",
		"yield x",
		"await f()",
		"for i in x",
		"while True",
		"def f(): pass",
		"class A",
		"x y",
		"hello world",
		"1 +",
		"x and",
		"(1, 2",
		"[1, 2]]",
		"'unterminated",
		"x; y",
		"a: 1",
		"try",
	}
	for _, src := range cases {
		if Valid(src) {
			t.Errorf("Valid(%q) = true, want false", src)
		}
	}
}
