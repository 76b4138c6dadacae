package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/dhvani-labs/vartani/internal/model"
)

func TestWriteEncodesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewWriter(&buf, false)

	ctx := context.Background()
	if err := o.Write(ctx, model.WordResult{Word: "बात", Label: model.LabelCorrect}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := o.Write(ctx, model.WordResult{Word: "xyz", Label: model.LabelIncorrect}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first model.WordResult
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if first.Word != "बात" || first.Label != model.LabelCorrect {
		t.Errorf("first line = %+v", first)
	}
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	o := NewWriter(&buf, true)

	if err := o.Write(context.Background(), model.WordResult{Word: "काम", Label: model.LabelCorrect}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
		t.Error("pretty output is not indented")
	}
}
