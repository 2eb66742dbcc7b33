// ABOUTME: YAML seed corpus import for first-run knowledge bases
// ABOUTME: Loads a list of question/answer pairs and appends them to an empty store

package qna

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedEntry is one pair in the seed file.
type seedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// LoadSeed parses a YAML seed file: a list of {question, answer} entries.
func LoadSeed(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		if e.Question == "" {
			continue
		}
		records = append(records, Record{Question: e.Question, Answer: e.Answer})
	}
	return records, nil
}

// ImportSeed adds the seed entries when the store is empty. A missing seed
// file is not an error. Returns the number of records imported.
func (s *Store) ImportSeed(path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}

	existing, err := s.Load()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeds, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}
	for _, r := range seeds {
		if _, err := s.Add(r.Question, r.Answer); err != nil {
			return 0, err
		}
	}
	return len(seeds), nil
}
