// Package args decodes untyped tool arguments into typed structs.
//
// The protocol leaves argument payloads untyped; each tool set decodes its
// expected shape here and fails with a descriptive ArgumentError on
// mismatch, which the server boundary surfaces as a failed tool result.
package args

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/cmarchena/toolwire/internal/errors"
)

// Decode fills out from raw. Numeric arguments arrive as float64 from
// JSON-shaped payloads, so weakly typed input is enabled to let integer
// fields accept them. Unknown keys are ignored.
func Decode(tool string, raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build decoder for tool %q: %w", tool, err)
	}

	if err := decoder.Decode(raw); err != nil {
		return &errors.ArgumentError{Tool: tool, Err: err}
	}

	return nil
}

// Missing reports an absent required parameter.
func Missing(tool, param string) error {
	return &errors.ArgumentError{
		Tool: tool,
		Err:  fmt.Errorf("missing required parameter %q", param),
	}
}
