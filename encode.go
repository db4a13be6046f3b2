package papers

import "encoding/json"

// JSONEncoder is the default output encoder: pretty-printed JSON with
// two-space indentation.
type JSONEncoder struct{}

// Encode implements interfaces.Encoder.
func (JSONEncoder) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
