package sink

import (
	"bytes"
	"encoding/csv"
	"os"

	"ownership-watch/internal/model"
)

// csvSink writes the ledger as a flat table with the fixed 9-column
// header, one row per event. Written via temp file and rename like the
// JSON state files.
type csvSink struct {
	path string
}

func NewCSV(path string) Sink {
	return &csvSink{path: path}
}

func (c *csvSink) Name() string { return "csv" }

func (c *csvSink) Write(events []model.Event) error {
	b, err := Render(events)
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

// Render produces the CSV bytes; split out so tests can golden-check
// the exact output.
func Render(events []model.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(model.Columns); err != nil {
		return nil, err
	}
	for _, e := range events {
		if err := w.Write(e.Row()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
