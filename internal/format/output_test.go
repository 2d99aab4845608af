package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteJSON(&buf, map[string]any{"name": "Burgers", "products": 2})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("output missing trailing newline")
	}
	if !strings.Contains(out, "\n  \"name\": \"Burgers\"") {
		t.Errorf("output not indented: %q", out)
	}
}

func TestWriteJSONRejectsUnencodable(t *testing.T) {
	t.Parallel()

	if err := WriteJSON(&bytes.Buffer{}, func() {}); err == nil {
		t.Fatal("expected an error for an unencodable value")
	}
}
