package score

import "testing"

func TestExtractAnswerTag(t *testing.T) {
	cases := []struct {
		solution string
		want     string
	}{
		{"reasoning... <answer> 72 </answer>", "72"},
		{"<ANSWER>1,234</ANSWER>", "1234"},
		{"multi\nline\n<answer>\n-5\n</answer>", "-5"},
	}
	for _, tc := range cases {
		got, ok := ExtractAnswer(tc.solution, Strict)
		if !ok || got != tc.want {
			t.Errorf("ExtractAnswer(%q) = (%q, %v), want (%q, true)", tc.solution, got, ok, tc.want)
		}
	}
}

func TestExtractAnswerStrict(t *testing.T) {
	got, ok := ExtractAnswer("The total is\n#### 72", Strict)
	if !ok || got != "72" {
		t.Errorf("got (%q, %v), want (72, true)", got, ok)
	}

	got, ok = ExtractAnswer("#### 1,234", Strict)
	if !ok || got != "1234" {
		t.Errorf("got (%q, %v), want (1234, true)", got, ok)
	}

	if _, ok := ExtractAnswer("no marker, the answer is 72", Strict); ok {
		t.Error("strict mode must not fall back to bare numbers")
	}
}

func TestExtractAnswerFlexible(t *testing.T) {
	got, ok := ExtractAnswer("first 10 apples, then 32, so 42", Flexible)
	if !ok || got != "42" {
		t.Errorf("got (%q, %v), want (42, true)", got, ok)
	}

	// Bare punctuation runs are skipped.
	got, ok = ExtractAnswer("done 7 ...", Flexible)
	if !ok || got != "7" {
		t.Errorf("got (%q, %v), want (7, true)", got, ok)
	}

	if _, ok := ExtractAnswer("no numbers here", Flexible); ok {
		t.Error("expected no answer from numberless text")
	}
}

func TestComputeScore(t *testing.T) {
	cases := []struct {
		name     string
		solution string
		truth    string
		method   Method
		want     float64
	}{
		{"exact match", "#### 72", "72", Strict, 1.0},
		{"wrong answer", "#### 71", "72", Strict, 0.0},
		{"no answer", "I give up", "72", Strict, 0.0},
		{"flexible match", "so the result is 72", "72", Flexible, 1.0},
		{"tag beats marker", "<answer>5</answer> #### 9", "5", Strict, 1.0},
	}
	for _, tc := range cases {
		if got := ComputeScore(tc.solution, tc.truth, tc.method, 0.0, 1.0); got != tc.want {
			t.Errorf("%s: ComputeScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestComputeScoreFormatScore(t *testing.T) {
	// A wrong but extractable answer earns the format score.
	if got := ComputeScore("#### 71", "72", Strict, 0.3, 1.0); got != 0.3 {
		t.Errorf("ComputeScore = %v, want 0.3", got)
	}
	// No extractable answer earns nothing, even with a format score set.
	if got := ComputeScore("nothing", "72", Strict, 0.3, 1.0); got != 0 {
		t.Errorf("ComputeScore = %v, want 0", got)
	}
}
