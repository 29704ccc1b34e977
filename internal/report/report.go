// ABOUTME: Runs one export: gathers records from a Source and writes the report.
// ABOUTME: Fetches everything before writing so failures never leave a partial document.

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/dash2html/internal/render"
	"github.com/harper/dash2html/internal/source"
)

// Result describes a finished run.
type Result struct {
	RunID uuid.UUID
	Stats render.Stats
}

// Collect fetches every snippet and, one at a time, its tags. Any source
// error aborts the collection.
func Collect(src source.Source) ([]render.Record, error) {
	snippets, err := src.ListSnippets()
	if err != nil {
		return nil, err
	}

	records := make([]render.Record, 0, len(snippets))
	for _, s := range snippets {
		tags, err := src.TagsFor(s.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, render.Record{Snippet: s, Tags: tags})
	}
	return records, nil
}

// Write renders the report for src to w. Nothing is written unless every
// record was fetched successfully.
func Write(src source.Source, w io.Writer, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	res := &Result{RunID: uuid.New()}
	logger = logger.With("run", res.RunID.String()[:8])

	records, err := Collect(src)
	if err != nil {
		logger.Debug("export aborted", "err", err)
		return nil, err
	}
	logger.Debug("collected records", "count", len(records))

	stats, err := render.Assemble(w, records)
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	res.Stats = stats

	logger.Info("report written", "rendered", stats.Rendered, "skipped", stats.Skipped)
	return res, nil
}

// WriteFile renders the report to path. An existing file is only replaced
// once the report is complete.
func WriteFile(src source.Source, path string, logger *log.Logger) (*Result, error) {
	if path == "" {
		return nil, errors.New("write report: empty output path")
	}

	var buf bytes.Buffer
	res, err := Write(src, &buf, logger)
	if err != nil {
		return nil, err
	}

	if err := replaceFile(path, buf.Bytes()); err != nil {
		return nil, err
	}
	return res, nil
}

// replaceFile writes data to a temporary file next to path and renames it
// into place. The temporary file never outlives a failed write.
func replaceFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace report: %w", err)
	}
	return nil
}
