package helper

import "regexp"

var (
	digitsRegexp     = regexp.MustCompile(`^[0-9]+$`)
	upperAlnumRegexp = regexp.MustCompile(`^[A-Z0-9]+$`)
)

// IsDigits reports whether str is a non-empty run of ASCII digits.
// Unlike strconv parsing it rejects signs, spaces and decimal points.
func IsDigits(str string) bool {
	return digitsRegexp.MatchString(str)
}

// IsUpperAlnum reports whether str consists only of A-Z and 0-9.
func IsUpperAlnum(str string) bool {
	return upperAlnumRegexp.MatchString(str)
}

func IsDigitsOfLength(str string, lengths ...int) bool {
	if !IsDigits(str) {
		return false
	}
	for _, l := range lengths {
		if len(str) == l {
			return true
		}
	}
	return false
}
