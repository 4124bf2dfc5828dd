package config

import (
	"math"
	"strconv"
	"strings"
)

// FlagValue returns the value that follows flag in args. The value is the
// space-joined run of tokens after the flag up to the next token that starts
// with "-". found is false when the flag is absent or has no value.
func FlagValue(flag string, args []string) (value string, found bool, err error) {
	if flag == "" || args == nil {
		return "", false, ErrMissingParameter
	}
	idx := -1
	for i, a := range args {
		if a == flag {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false, nil
	}
	var parts []string
	for _, a := range args[idx+1:] {
		if a == "" || strings.HasPrefix(a, "-") {
			break
		}
		parts = append(parts, a)
	}
	if len(parts) == 0 {
		return "", false, nil
	}
	return strings.Join(parts, " "), true, nil
}

// FlagNumber returns the value of flag parsed as a number and truncated to a
// whole unit. Missing or non-numeric values yield 0.
func FlagNumber(flag string, args []string) (int, error) {
	v, found, err := FlagValue(flag, args)
	if err != nil || !found {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, nil
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(f), nil
}

// HasFlag reports whether flag appears verbatim in args.
func HasFlag(flag string, args []string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
