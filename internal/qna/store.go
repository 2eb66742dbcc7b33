// ABOUTME: JSONL persistence for the question/answer knowledge base
// ABOUTME: Appends on add; rewrites via temp file + rename on update and delete

package qna

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound is returned when an update or delete targets an absent record.
var ErrNotFound = errors.New("record not found")

const storeFileName = "qna.jsonl"

// Store persists Records as one JSON object per line.
type Store struct {
	path string
}

// Open prepares a store under dataDir, creating the directory if needed.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{path: filepath.Join(dataDir, storeFileName)}, nil
}

// Load reads all records. A missing file is an empty knowledge base.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("parsing store line %d: %w", len(records)+1, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	return records, nil
}

// Add appends a new record and returns it with its generated ID.
func (s *Store) Add(question, answer string) (Record, error) {
	r := Record{ID: newID(), Question: question, Answer: answer}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Record{}, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(r)
	if err != nil {
		return Record{}, fmt.Errorf("encoding record: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return Record{}, fmt.Errorf("appending record: %w", err)
	}
	return r, nil
}

// UpdateAnswer replaces the answer of the record with the given ID.
func (s *Store) UpdateAnswer(id, answer string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	found := false
	for i := range records {
		if records[i].ID == id {
			records[i].Answer = answer
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.rewrite(records)
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.rewrite(kept)
}

// rewrite replaces the store file atomically.
func (s *Store) rewrite(records []Record) error {
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("encoding record: %w", err)
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing temp store: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

// newID builds a timestamp-derived opaque ID.
func newID() string {
	return fmt.Sprintf("qna-%d", time.Now().UnixNano())
}
