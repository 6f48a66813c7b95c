// Completion: 100% - Ordered pattern matcher complete
package main

// WildcardPattern and DefaultPattern are the reserved patterns that match
// any value unconditionally.
const (
	WildcardPattern = "*"
	DefaultPattern  = "default"
)

// Arm is one pattern/result pair in a match construct
type Arm struct {
	Pattern string
	Result  string
}

// MatchPattern reports whether a pattern accepts a value. Two forms exist:
// literal equality against the value's textual representation, and the
// universal wildcard. Guard expressions are out of scope.
func MatchPattern(pattern, value string) bool {
	if pattern == WildcardPattern || pattern == DefaultPattern {
		return true
	}
	return pattern == value
}

// FirstMatch evaluates arms strictly in declaration order and returns the
// first arm whose pattern matches, short-circuiting the rest. A wildcard
// arm ahead of a more specific arm therefore shadows it.
func FirstMatch(arms []Arm, value string) (Arm, bool) {
	for _, arm := range arms {
		if MatchPattern(arm.Pattern, value) {
			return arm, true
		}
	}
	return Arm{}, false
}
