package apiv1connect

import (
	"encoding/json"
	"fmt"
)

const codecName = "json"

// Codec marshals the plain Go messages of this API as JSON. It replaces
// connect's protojson codec, which only accepts generated protobuf types.
type Codec struct{}

func (Codec) Name() string {
	return codecName
}

func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal into %T: %w", message, err)
	}

	return nil
}
