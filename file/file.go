package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/scorepoint/score"
)

// ReadScore loads a layout dump from the rendering side: a JSON array of
// systems in the order they appear on the page.
func ReadScore(path string) ([]*score.System, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}
	var systems []*score.System
	if err := json.Unmarshal(dat, &systems); err != nil {
		return nil, fmt.Errorf("parsing score %v: %w", path, err)
	}
	return systems, nil
}

// WriteScore dumps systems back out the way ReadScore expects them, which
// is how the sample layouts get onto disk for the CLI to chew on.
func WriteScore(path string, systems []*score.System) error {
	dat, err := json.MarshalIndent(systems, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding score: %w", err)
	}
	if err := os.WriteFile(path, dat, 0644); err != nil {
		return fmt.Errorf("writing score %v: %w", path, err)
	}
	return nil
}
