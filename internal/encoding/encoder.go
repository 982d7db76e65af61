package encoding

import (
	"encoding/json"
	"fmt"
	"os"
)

// Encoder is a read-only label to integer code mapping produced offline
// during model training. Labels outside the vocabulary map to 0.
type Encoder map[string]int

func (e Encoder) Lookup(label string) int {
	if id, ok := e[label]; ok {
		return id
	}
	return 0
}

func (e Encoder) Size() int {
	return len(e)
}

// Set bundles the two vocabularies the feature pipeline needs. It is loaded
// once at startup and shared read-only across requests.
type Set struct {
	ActionTypes Encoder `json:"action_type"`
	ItemKinds   Encoder `json:"item_kind"`
}

func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoders: %w", err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse encoders: %w", err)
	}

	if set.ActionTypes == nil {
		set.ActionTypes = Encoder{}
	}
	if set.ItemKinds == nil {
		set.ItemKinds = Encoder{}
	}

	return &set, nil
}
