package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWarning records a clause record that was skipped during load.
// Skipped records are never fatal: the rest of the corpus still loads.
type LoadWarning struct {
	File string
	Err  error
}

func (w LoadWarning) String() string {
	return fmt.Sprintf("%s: %v", w.File, w.Err)
}

// Load reads every clause record (*.json, *.yaml, *.yml, one clause per
// file) from dir and builds an immutable corpus. Malformed records are
// skipped and reported as warnings. The returned error covers only
// directory-level failures.
func Load(dir string) (*Corpus, []LoadWarning, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing directory means an empty corpus, not a failure.
			return New(nil), nil, nil
		}
		return nil, nil, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var clauses []Clause
	var warnings []LoadWarning
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isClauseFile(name) {
			continue
		}
		clause, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			warnings = append(warnings, LoadWarning{File: name, Err: err})
			continue
		}
		clauses = append(clauses, clause)
	}

	return New(clauses), warnings, nil
}

func isClauseFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func loadFile(path string) (Clause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Clause{}, fmt.Errorf("reading file: %w", err)
	}

	var clause Clause
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &clause)
	} else {
		err = yaml.Unmarshal(data, &clause)
	}
	if err != nil {
		return Clause{}, fmt.Errorf("parsing record: %w", err)
	}

	if clause.ID == "" {
		return Clause{}, fmt.Errorf("record missing rule_id")
	}
	return clause, nil
}
