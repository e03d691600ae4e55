package adapter

import (
	"encoding/json"
)

// JSON is the codec seam for stream records and provider payloads.
// Tests substitute it to inject encode/decode failures.
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type stdJSON struct{}

// NewJSON returns the encoding/json-backed codec.
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
