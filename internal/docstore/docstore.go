// Package docstore loads YAML documents into generic nested trees and
// provides defensive path accessors over them. A document that cannot be
// read or parsed degrades to an empty tree; load errors never propagate
// past this package.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/anixlabs/profilectl/internal/logging"
)

// Document is one parsed YAML file as a generic nested tree.
type Document map[string]any

// Load reads and parses the YAML document at path. On any I/O or parse
// failure it logs the error and returns an empty Document.
func Load(path string, log logging.Logger) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("cannot read document", "path", path, "err", err)
		return Document{}
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Error("invalid YAML document", "path", path, "err", err)
		return Document{}
	}
	if doc == nil {
		doc = Document{}
	}
	log.Info("loaded document", "path", path)
	return doc
}

// Save marshals doc and writes it to path.
func Save(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cannot marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write document %s: %w", path, err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Map returns the nested mapping at the given key path, or an empty mapping
// when any step of the path is missing or not a mapping.
func Map(m map[string]any, keys ...string) map[string]any {
	cur := m
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return map[string]any{}
		}
		cur = next
	}
	if cur == nil {
		return map[string]any{}
	}
	return cur
}

// Seq returns the sequence at the given key path, or an empty sequence.
func Seq(m map[string]any, keys ...string) []any {
	if len(keys) == 0 {
		return []any{}
	}
	parent := Map(m, keys[:len(keys)-1]...)
	s, ok := parent[keys[len(keys)-1]].([]any)
	if !ok {
		return []any{}
	}
	return s
}

// Str returns the string value of key, or "".
func Str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Int returns the integer value of key.
func Int(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// StrSeq returns the string elements of the sequence at key.
func StrSeq(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
