package diagnostics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVColumns is the fixed column order of a CSV log row. There is no header
// row in the files themselves.
var CSVColumns = []string{"filename", "lineNumber", "kindName", "message", "details"}

// WriteCSV writes the log to path, one row per entry in insertion order.
// Absent filename and details become empty fields. Failures are ordinary
// wrapped I/O errors and leave the in-memory log untouched.
func (l *Log) WriteCSV(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv log %q: %w", path, err)
	}
	if err := l.WriteCSVTo(fh); err != nil {
		fh.Close()
		return fmt.Errorf("write csv log %q: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close csv log %q: %w", path, err)
	}
	return nil
}

// WriteCSVTo emits the same rows to an arbitrary writer.
func (l *Log) WriteCSVTo(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, d := range l.entries {
		row := []string{d.filename, strconv.Itoa(d.line), d.kind, d.message, d.details}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
