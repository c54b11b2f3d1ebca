package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mlstdb/internal/failures"
)

const component = "report"

// Field is one attribute of a species hit, kept as raw JSON.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Hit is a single candidate species entry of the report.
type Hit struct {
	Label  string
	Fields []Field
}

// Report holds the species hits in document order.
type Report struct {
	Hits []Hit
}

// Field returns the raw value stored under key.
func (h Hit) Field(key string) (json.RawMessage, bool) {
	for _, field := range h.Fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Float coerces the value stored under key to a float64. JSON numbers and
// numeric strings are accepted; NaN and infinities parse like any other number.
func (h Hit) Float(key string) (float64, error) {
	raw, ok := h.Field(key)
	if !ok {
		return 0, failures.Wrap(failures.ErrMalformedReport, component, "score",
			fmt.Sprintf("hit %q has no %q field", h.Label, key), nil)
	}
	value, err := parseFloat(raw)
	if err != nil {
		return 0, failures.Wrap(failures.ErrMalformedReport, component, "score",
			fmt.Sprintf("hit %q field %q", h.Label, key), err)
	}
	return value, nil
}

// Len reports the number of hits.
func (r Report) Len() int {
	return len(r.Hits)
}

// Labels returns the hit labels in document order.
func (r Report) Labels() []string {
	labels := make([]string, 0, len(r.Hits))
	for _, hit := range r.Hits {
		labels = append(labels, hit.Label)
	}
	return labels
}

// Rows returns the union of field keys across all hits, in first-seen order.
// Viewing the report as a table with one column per species, these are its
// row labels.
func (r Report) Rows() []string {
	seen := make(map[string]struct{})
	var rows []string
	for _, hit := range r.Hits {
		for _, field := range hit.Fields {
			if _, ok := seen[field.Key]; ok {
				continue
			}
			seen[field.Key] = struct{}{}
			rows = append(rows, field.Key)
		}
	}
	return rows
}

// Filter returns a report containing only the hits for which keep is true.
func (r Report) Filter(keep func(Hit) bool) Report {
	out := Report{Hits: make([]Hit, 0, len(r.Hits))}
	for _, hit := range r.Hits {
		if keep(hit) {
			out.Hits = append(out.Hits, hit)
		}
	}
	return out
}

// Load reads and parses the report at path. The path must name an existing
// regular file.
func Load(path string) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, failures.Wrap(failures.ErrNotFound, component, "load",
			fmt.Sprintf("kmerfinder_res must be an existing file: %s", path), err)
	}
	if !info.Mode().IsRegular() {
		return Report{}, failures.Wrap(failures.ErrNotFound, component, "load",
			fmt.Sprintf("kmerfinder_res must be an existing file: %s is not a regular file", path), nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, failures.Wrap(failures.ErrNotFound, component, "load",
			fmt.Sprintf("read %s", path), err)
	}
	return Parse(data)
}

type envelope struct {
	KmerFinder *struct {
		Results *struct {
			SpeciesHits json.RawMessage `json:"species_hits"`
		} `json:"results"`
	} `json:"kmerfinder"`
}

// Parse decodes a KmerFinder JSON document.
func Parse(data []byte) (Report, error) {
	var doc envelope
	if err := json.Unmarshal(data, &doc); err != nil {
		return Report{}, failures.Wrap(failures.ErrMalformedReport, component, "parse", "decode json", err)
	}
	switch {
	case doc.KmerFinder == nil:
		return Report{}, missingKey("kmerfinder")
	case doc.KmerFinder.Results == nil:
		return Report{}, missingKey("kmerfinder.results")
	case len(doc.KmerFinder.Results.SpeciesHits) == 0:
		return Report{}, missingKey("kmerfinder.results.species_hits")
	}

	var rep Report
	index := make(map[string]int)
	err := decodeObject(doc.KmerFinder.Results.SpeciesHits, func(label string, value json.RawMessage) error {
		fields, err := decodeFields(value)
		if err != nil {
			return fmt.Errorf("species hit %q: %w", label, err)
		}
		// Duplicate labels keep their first position and the last value.
		if pos, ok := index[label]; ok {
			rep.Hits[pos].Fields = fields
			return nil
		}
		index[label] = len(rep.Hits)
		rep.Hits = append(rep.Hits, Hit{Label: label, Fields: fields})
		return nil
	})
	if err != nil {
		return Report{}, failures.Wrap(failures.ErrMalformedReport, component, "parse", "species_hits", err)
	}
	return rep, nil
}

func missingKey(path string) error {
	return failures.Wrap(failures.ErrMalformedReport, component, "parse", fmt.Sprintf("missing key %s", path), nil)
}

func decodeFields(data json.RawMessage) ([]Field, error) {
	var fields []Field
	index := make(map[string]int)
	err := decodeObject(data, func(key string, value json.RawMessage) error {
		if pos, ok := index[key]; ok {
			fields[pos].Value = value
			return nil
		}
		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: value})
		return nil
	})
	return fields, err
}

var errNotObject = errors.New("expected a json object")

// decodeObject walks the members of a JSON object in document order.
func decodeObject(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func parseFloat(raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, errors.New("empty value")
	}
	var text string
	switch c := trimmed[0]; {
	case c == '"':
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
	case c == '-' || (c >= '0' && c <= '9'):
		text = string(trimmed)
	default:
		return 0, fmt.Errorf("cannot convert %s to float", trimmed)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range values saturate to an infinity or zero.
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, fmt.Errorf("cannot convert %q to float", text)
	}
	return value, nil
}
