package testsupport

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

// Field is one ordered attribute of a fixture hit.
type Field struct {
	Key   string
	Value any
}

// Hit is a fixture species hit. Fields are encoded in the given order.
type Hit struct {
	Label  string
	Fields []Field
}

// ScoredHit builds a hit shaped like KmerFinder output, with Score in the
// third row.
func ScoredHit(label string, score any) Hit {
	return Hit{
		Label: label,
		Fields: []Field{
			{Key: "Assembly", Value: "GCF_000000000.1"},
			{Key: "Num", Value: 1234},
			{Key: "Score", Value: score},
			{Key: "Expected", Value: 12},
		},
	}
}

// PositionalHit builds a hit whose rows are labelled "0", "1", "2" with the
// score in row "2".
func PositionalHit(label string, score any) Hit {
	return Hit{
		Label: label,
		Fields: []Field{
			{Key: "0", Value: "x"},
			{Key: "1", Value: "y"},
			{Key: "2", Value: score},
		},
	}
}

// ReportJSON encodes hits as a KmerFinder data.json document, preserving hit
// and field order.
func ReportJSON(t testing.TB, hits ...Hit) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString(`{"kmerfinder":{"results":{"species_hits":{`)
	for i, hit := range hits {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSON(t, &buf, hit.Label)
		buf.WriteString(":{")
		for j, field := range hit.Fields {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeJSON(t, &buf, field.Key)
			buf.WriteByte(':')
			writeJSON(t, &buf, field.Value)
		}
		buf.WriteByte('}')
	}
	buf.WriteString(`}}}}`)
	return buf.Bytes()
}

// WriteReport writes a KmerFinder report fixture into dir and returns its path.
func WriteReport(t testing.TB, dir string, hits ...Hit) string {
	t.Helper()

	path := filepath.Join(dir, "data.json")
	WriteFile(t, path, ReportJSON(t, hits...))
	return path
}

func writeJSON(t testing.TB, buf *bytes.Buffer, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %v: %v", v, err)
	}
	buf.Write(data)
}
