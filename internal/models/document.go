package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is a JSON object whose keys keep the order they were read in.
// Values are kept raw so nested objects are reproduced verbatim.
type Document = orderedmap.OrderedMap[string, json.RawMessage]

// ParseDocument decodes a single JSON object printed by the CLI
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedOutput)
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedOutput)
	}

	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return doc, nil
}
