package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writes development model artifacts (encoders.json and metadata.json)
// into MODEL_DIR so the server can start without a real training export.
func main() {
	dir := os.Getenv("MODEL_DIR")
	if dir == "" {
		dir = "./models"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create model dir: %v\n", err)
		os.Exit(1)
	}

	encoders := map[string]map[string]int{
		"action_type": {
			"enter":   0,
			"respond": 1,
			"submit":  2,
			"erase":   3,
			"quit":    4,
			"pay":     5,
			"refund":  6,
		},
		"item_kind": {
			"bundle":   0,
			"question": 1,
		},
	}

	metadata := map[string]any{
		"threshold":     0.5,
		"model_version": "dev",
	}

	if err := writeJSON(filepath.Join(dir, "encoders.json"), encoders); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write encoders: %v\n", err)
		os.Exit(1)
	}
	if err := writeJSON(filepath.Join(dir, "metadata.json"), metadata); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write metadata: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Development model artifacts written!")
	fmt.Println("")
	fmt.Printf("  %s\n", filepath.Join(dir, "encoders.json"))
	fmt.Printf("  %s\n", filepath.Join(dir, "metadata.json"))
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
