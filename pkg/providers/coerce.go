package providers

import (
	"math/rand"
	"regexp"
	"strconv"
)

// numericString matches integer and decimal literals. Several providers
// reject stringified numerics, so these are converted before dispatch.
var numericString = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// maxSeed bounds rolled seeds to the 31-bit signed range providers accept.
const maxSeed = 2147483647

// CoerceInputs returns a copy of inputs with numeric-looking strings
// converted to numbers and seed sentinels replaced. A "seed" value of -1
// becomes a freshly rolled non-negative random integer, so re-running a
// graph never replays a previous seed.
func CoerceInputs(inputs map[string]any) map[string]any {
	out := make(map[string]any, len(inputs))

	for key, value := range inputs {
		if s, ok := value.(string); ok && numericString.MatchString(s) {
			value = parseNumber(s)
		}

		if key == "seed" && isSentinelSeed(value) {
			value = rand.Intn(maxSeed)
		}

		out[key] = value
	}

	return out
}

func parseNumber(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}

	f, _ := strconv.ParseFloat(s, 64)

	return f
}

func isSentinelSeed(value any) bool {
	switch v := value.(type) {
	case int:
		return v == -1
	case int64:
		return v == -1
	case float64:
		return v == -1
	default:
		return false
	}
}
