// Package internalnode executes the free helper nodes: pure functions over
// their inputs, never network I/O, never a credit charge.
package internalnode

import (
	"context"
	"math/rand"

	"github.com/haus-node/haus/pkg/providers"
)

const maxSeed = 2147483647

// Adapter handles every node whose provider is "internal", dispatching on
// the definition's provider model.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Execute(ctx context.Context, req providers.Request) (map[string]any, error) {
	inputs := req.Inputs

	switch req.Definition.ProviderModel {
	case "internal/text":
		value := inputs["value"]
		if value == nil {
			value = ""
		}

		return map[string]any{"text": value}, nil

	case "internal/number":
		return map[string]any{"number": toNumber(inputs["value"])}, nil

	case "internal/seed":
		value := inputs["value"]
		if isZeroOrSentinel(value) {
			value = rand.Intn(maxSeed)
		}

		return map[string]any{"seed": value}, nil

	case "internal/import":
		// The same URL feeds both media ports; downstream edges pick the
		// one they need.
		return map[string]any{"image": inputs["url"], "video": inputs["url"]}, nil

	case "internal/export":
		return inputs, nil

	case "internal/preview":
		return map[string]any{"media": firstDefined(inputs, "media", "image", "video", "audio")}, nil

	case "internal/text-iterator":
		return map[string]any{"text": inputs["items"]}, nil

	default:
		return inputs, nil
	}
}

func toNumber(value any) any {
	switch v := value.(type) {
	case nil:
		return 0
	case int, int64, float64:
		return v
	default:
		return 0
	}
}

// isZeroOrSentinel treats -1, 0 and missing values as "roll a fresh seed".
func isZeroOrSentinel(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case int:
		return v == -1 || v == 0
	case int64:
		return v == -1 || v == 0
	case float64:
		return v == -1 || v == 0
	case string:
		return v == ""
	default:
		return false
	}
}

func firstDefined(inputs map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := inputs[key]; ok && value != nil {
			return value
		}
	}

	return nil
}
