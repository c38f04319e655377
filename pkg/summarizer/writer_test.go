package summarizer

import (
	"errors"
	"testing"

	"github.com/user/tinyrender/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) string {
		return "summary of " + s.Stream.Path
	})

	w := NewWriter(formatter, fs)
	summary := NewBuilder().WithStream("out.y4m", 4, 4, 30).Build()

	if err := w.Write("reports/summary.md", summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.GetFile("reports/summary.md")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if string(data) != "summary of out.y4m" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestWriter_Write_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("read-only")
	}

	w := NewWriter(NewMarkdownFormatter(), fs)
	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected error")
	}
}
