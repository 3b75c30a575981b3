package quiz

import (
	"strconv"
	"strings"
)

// Resolve validates one raw answer against the options as presented.
//
// The numeric path is primary: input parsing as an integer k with
// 1 <= k <= len(options) selects options[k-1] and compares it to the
// correct text exactly. Anything else (including out-of-range numbers)
// falls back to a case-insensitive full-string match in presentation
// order, first match wins. Blank input, or input matching nothing,
// yields valid=false.
func Resolve(raw string, options []string, correct string) (chosen string, valid bool, isCorrect bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, false
	}

	if k, err := strconv.Atoi(raw); err == nil && k >= 1 && k <= len(options) {
		chosen = options[k-1]
		return chosen, true, chosen == correct
	}

	for _, opt := range options {
		if strings.EqualFold(opt, raw) {
			return opt, true, opt == correct
		}
	}
	return "", false, false
}
