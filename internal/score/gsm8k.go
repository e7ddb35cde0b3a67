// Package score extracts and grades final numeric answers from free-form
// solution text, GSM8K style.
package score

import (
	"regexp"
	"strings"
)

// Method selects how the final answer is located in the solution text.
type Method string

const (
	// Strict accepts the <answer> tag or the "#### <number>" marker.
	Strict Method = "strict"
	// Flexible additionally falls back to the last number in the text.
	Flexible Method = "flexible"
)

var (
	answerTagRe = regexp.MustCompile(`(?is)<answer>\s*([-0-9.,]+).*?</answer>`)
	hashMarkRe  = regexp.MustCompile(`####\s*([-0-9.,]+)`)
	numberRe    = regexp.MustCompile(`[-0-9.,]+`)
)

var cleaner = strings.NewReplacer(",", "", "$", "")

// ExtractAnswer pulls the final answer out of a solution text. An <answer>
// tag wins when present. Otherwise Strict requires the #### marker and
// Flexible takes the last number-looking token.
func ExtractAnswer(solution string, method Method) (string, bool) {
	if m := answerTagRe.FindStringSubmatch(solution); m != nil {
		return cleaner.Replace(m[1]), true
	}

	if method == Strict {
		if m := hashMarkRe.FindStringSubmatch(solution); m != nil {
			return cleaner.Replace(m[1]), true
		}
		return "", false
	}

	nums := numberRe.FindAllString(solution, -1)
	for i := len(nums) - 1; i >= 0; i-- {
		if strings.Trim(strings.TrimSpace(nums[i]), ".") != "" {
			return cleaner.Replace(nums[i]), true
		}
	}
	return "", false
}

// ComputeScore grades a solution against the ground truth: fullScore for an
// exact match, formatScore for an extractable but wrong answer, zero when
// no answer can be extracted at all.
func ComputeScore(solution, groundTruth string, method Method, formatScore, fullScore float64) float64 {
	answer, ok := ExtractAnswer(solution, method)
	if !ok {
		return 0
	}
	if answer == groundTruth {
		return fullScore
	}
	return formatScore
}
