package scoring

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultThreshold is used when the metadata artifact carries no decision
// threshold of its own.
const DefaultThreshold = 0.5

// Metadata is the model-adjacent configuration exported at training time.
type Metadata struct {
	Threshold    float64
	ModelVersion string
}

type metadataFile struct {
	Threshold    *float64 `json:"threshold"`
	ModelVersion string   `json:"model_version"`
}

func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var file metadataFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	meta := &Metadata{
		Threshold:    DefaultThreshold,
		ModelVersion: file.ModelVersion,
	}
	if file.Threshold != nil {
		meta.Threshold = *file.Threshold
	}

	return meta, nil
}
