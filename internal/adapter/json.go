package adapter

import (
	"encoding/json"
)

// JSON abstracts event payload encoding so the publisher tests can inject
// marshal failures
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// StdJSON backs the JSON interface with encoding/json
type StdJSON struct{}

// NewJSON returns the standard library implementation
func NewJSON() JSON {
	return &StdJSON{}
}

func (j *StdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *StdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
