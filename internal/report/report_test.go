// ABOUTME: Tests for the export runner.
// ABOUTME: Uses in-memory sources to check fail-fast behavior and file output.

package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/harper/dash2html/internal/db/dbtest"
	"github.com/harper/dash2html/internal/models"
	"github.com/harper/dash2html/internal/render"
	"github.com/harper/dash2html/internal/source"
)

type stubSource struct {
	snippets []*models.Snippet
	tags     map[int64][]*models.Tag
	listErr  error
	tagErrAt int64
	tagCalls []int64
}

func (s *stubSource) ListSnippets() ([]*models.Snippet, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.snippets, nil
}

func (s *stubSource) TagsFor(id int64) ([]*models.Tag, error) {
	s.tagCalls = append(s.tagCalls, id)
	if id == s.tagErrAt {
		return nil, source.ErrQueryFailure
	}
	return s.tags[id], nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func exampleSource() *stubSource {
	return &stubSource{
		snippets: []*models.Snippet{
			{ID: 1, Title: "Hello", Body: "say __name__ now", Syntax: "text"},
			{ID: 2, Title: "Secret", Body: "x", Syntax: "text"},
		},
		tags: map[int64][]*models.Tag{
			1: {models.NewTag(1, "public")},
			2: {models.NewTag(3, "draft")},
		},
	}
}

func TestCollectFetchesTagsPerSnippet(t *testing.T) {
	src := exampleSource()

	records, err := Collect(src)
	if err != nil {
		t.Fatalf("failed to collect: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if len(src.tagCalls) != 2 || src.tagCalls[0] != 1 || src.tagCalls[1] != 2 {
		t.Errorf("expected tag lookups for 1 then 2, got %v", src.tagCalls)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer

	res, err := Write(exampleSource(), &buf, quietLogger())
	if err != nil {
		t.Fatalf("failed to write report: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, render.Header) || !strings.HasSuffix(out, render.Footer) {
		t.Error("expected a framed document")
	}
	if strings.Count(out, `<tr id="snippet-`) != 1 {
		t.Errorf("expected one snippet row, got:\n%s", out)
	}
	if res.Stats.Rendered != 1 || res.Stats.Skipped != 1 {
		t.Errorf("unexpected stats %+v", res.Stats)
	}
}

func TestWriteFailsFast(t *testing.T) {
	tests := []struct {
		name string
		src  *stubSource
	}{
		{"listing fails", &stubSource{listErr: source.ErrQueryFailure}},
		{"tag lookup fails", func() *stubSource {
			s := exampleSource()
			s.tagErrAt = 2
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := Write(tt.src, &buf, quietLogger())
			if !errors.Is(err, source.ErrQueryFailure) {
				t.Errorf("expected ErrQueryFailure, got %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("expected no output on failure, got %d bytes", buf.Len())
			}
		})
	}
}

func TestWriteFileKeepsExistingReportOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.html")
	if err := os.WriteFile(path, []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	src := exampleSource()
	src.tagErrAt = 1
	if _, err := WriteFile(src, path, quietLogger()); err == nil {
		t.Fatal("expected error")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous" {
		t.Errorf("expected existing report to be untouched, got %q", data)
	}
}

func TestWriteFileLeavesNoTempFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "snippets.html")
	if err := os.MkdirAll(filepath.Join(path, "keep"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteFile(exampleSource(), path, quietLogger()); err == nil {
		t.Fatal("expected error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "snippets.html" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestWriteFileReplacesExistingReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippets.html")
	if err := os.WriteFile(path, []byte("previous"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteFile(exampleSource(), path, quietLogger()); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the report in %s, got %d entries", dir, len(entries))
	}
}

func TestWriteFileEmptyPath(t *testing.T) {
	if _, err := WriteFile(exampleSource(), "", quietLogger()); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestWriteFileFromLibrary(t *testing.T) {
	lib := dbtest.NewLibrary(t,
		dbtest.Entry{
			Snippet: models.Snippet{ID: 1, Title: "Hello", Body: "say __name__ now", Syntax: "text"},
			Tags:    []models.Tag{{ID: 1, Name: "public"}},
		},
		dbtest.Entry{
			Snippet: models.Snippet{ID: 2, Title: "Secret", Body: "x", Syntax: "text"},
			Tags:    []models.Tag{{ID: 3, Name: "draft"}},
		},
	)
	src, err := source.OpenSQLite(lib)
	if err != nil {
		t.Fatalf("failed to open library: %v", err)
	}
	defer func() { _ = src.Close() }()

	path := filepath.Join(t.TempDir(), "out", "snippets.html")
	if _, err := WriteFile(src, path, quietLogger()); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `<tr id="snippet-1">`) {
		t.Error("expected row for snippet 1")
	}
	if strings.Contains(out, `snippet-2`) {
		t.Error("expected no row for snippet 2")
	}
	if !strings.Contains(out, `say <span class="variable">__name__</span> now`) {
		t.Error("expected annotated body")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temporary file to be cleaned up")
	}
}
