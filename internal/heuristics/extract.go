package heuristics

import (
	"regexp"
	"strconv"
)

var firstIntegerRe = regexp.MustCompile(`\d+`)

// ExtractPercent pulls the first integer out of a guidance line and returns
// it as a fraction (so "Use 30% current margin" yields 0.30). This is a
// best-effort text parser: a line containing an unrelated number (a part
// number, a frequency) can misfire, which is why callers must range-check
// the result against a domain-specific sanity window before applying it.
func ExtractPercent(line string) (float64, bool) {
	match := firstIntegerRe.FindString(line)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return float64(n) / 100.0, true
}
