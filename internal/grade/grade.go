// Package grade maps letter grades to a Pass/Fail status.
package grade

// Status values returned by Evaluate.
const (
	StatusPass = "Pass"
	StatusFail = "Fail"
)

// passGrades is the exact set of letter grades that count as a pass.
// Matching is case-sensitive; anything outside the set (including the
// empty string) fails rather than being rejected.
var passGrades = map[string]struct{}{
	"O":  {},
	"A+": {},
	"A":  {},
	"B+": {},
	"B":  {},
	"C":  {},
}

// Evaluate returns StatusPass for a recognized passing grade and StatusFail
// for everything else.
func Evaluate(grade string) string {
	if _, ok := passGrades[grade]; ok {
		return StatusPass
	}
	return StatusFail
}
