package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/ghostoverflow/diaglog/internal/fswalk"
)

// logColumns is the fixed width of a per-unit CSV log row:
// filename, lineNumber, kindName, message, details.
const logColumns = 5

// Row is one logged diagnostic as read back from a per-unit CSV log. The
// log format carries no severity or routine, so merged artifacts stay
// row-shaped rather than reconstructing full diagnostics.
type Row struct {
	Filename string
	Line     string
	Kind     string
	Message  string
	Details  string
}

// ReadCSV reads one per-unit log. Every record must have exactly the five
// log columns.
func ReadCSV(path string) ([]Row, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = logColumns
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			Filename: rec[0],
			Line:     rec[1],
			Kind:     rec[2],
			Message:  rec[3],
			Details:  rec[4],
		})
	}
	return rows, nil
}

// Merge concatenates per-unit logs. Per-log row order is preserved; the
// order of files defines the inter-log order.
func Merge(files []fswalk.LogFile) ([]Row, error) {
	var rows []Row
	for _, f := range files {
		part, err := ReadCSV(f.AbsPath)
		if err != nil {
			return nil, fmt.Errorf("read log %q: %w", f.RelPath, err)
		}
		rows = append(rows, part...)
	}
	return rows, nil
}

// WriteCSV writes merged rows to path in the same headerless format as the
// per-unit logs.
func WriteCSV(path string, rows []Row) error {
	if path == "" {
		return nil
	}
	if err := fswalk.EnsureParentDir(path); err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	w := csv.NewWriter(fh)
	for _, row := range rows {
		rec := []string{row.Filename, row.Line, row.Kind, row.Message, row.Details}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Summary contains aggregate counters for one merge run.
type Summary struct {
	Logs         int            `json:"logs"`
	Rows         int            `json:"rows"`
	ByKind       map[string]int `json:"by_kind,omitempty"`
	ByFile       map[string]int `json:"by_file,omitempty"`
	UnknownKinds []string       `json:"unknown_kinds,omitempty"`
}

// Summarize counts rows per kind and per source file. When known is
// non-empty, kinds absent from it are collected into UnknownKinds sorted.
func Summarize(logs int, rows []Row, known map[string]struct{}) Summary {
	s := Summary{
		Logs:   logs,
		Rows:   len(rows),
		ByKind: map[string]int{},
		ByFile: map[string]int{},
	}

	unknown := map[string]struct{}{}
	for _, row := range rows {
		s.ByKind[row.Kind]++
		if row.Filename != "" {
			s.ByFile[row.Filename]++
		}
		if len(known) > 0 {
			if _, ok := known[row.Kind]; !ok {
				unknown[row.Kind] = struct{}{}
			}
		}
	}

	for kind := range unknown {
		s.UnknownKinds = append(s.UnknownKinds, kind)
	}
	sort.Strings(s.UnknownKinds)
	return s
}

// JSONReport is the structured summary persisted by --summary-json.
type JSONReport struct {
	GeneratedAt string   `json:"generated_at"`
	Summary     Summary  `json:"summary"`
	Logs        []string `json:"merged_logs"`
}

// NewJSONReport builds a report payload with RFC3339 generation timestamp.
func NewJSONReport(summary Summary, logs []string) JSONReport {
	return JSONReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:     summary,
		Logs:        logs,
	}
}

// WriteJSON writes the full JSON summary if path is non-empty.
func WriteJSON(path string, report JSONReport) error {
	if path == "" {
		return nil
	}
	if err := fswalk.EnsureParentDir(path); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	raw = append(raw, '\n')
	return os.WriteFile(path, raw, 0o644)
}
