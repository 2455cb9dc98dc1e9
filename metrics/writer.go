package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// FailureRecord is one transcript dropped from the dataset.
type FailureRecord struct {
	Source string
	Game   int
	Line   int
	Reason string
}

// Setup is the manifest of a run: its configuration and outcome.
type Setup struct {
	Config    any           `json:"config"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
	Metric    RunMetric     `json:"metric"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteSetup(config any, start, end time.Time, metric RunMetric) error {
	setup := Setup{
		Config:    config,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Metric:    metric,
	}

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteFailures(records []FailureRecord) error {
	header := []string{"source", "game", "line", "reason"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Source, strconv.Itoa(r.Game), strconv.Itoa(r.Line), r.Reason})
	}
	return w.writeCSV("failures.csv", header, rows)
}

// WriteLabels stores the label distribution by action class, sorted by class.
func (w *Writer) WriteLabels(labels map[string]int) error {
	total := 0
	classes := make([]string, 0, len(labels))
	for class, n := range labels {
		total += n
		classes = append(classes, class)
	}
	sort.Strings(classes)

	rows := make([][]string, 0, len(classes))
	for _, class := range classes {
		share := 0.0
		if total > 0 {
			share = float64(labels[class]) / float64(total) * 100
		}
		rows = append(rows, []string{class, strconv.Itoa(labels[class]), strconv.FormatFloat(share, 'f', 2, 64)})
	}
	return w.writeCSV("labels.csv", []string{"class", "count", "percent"}, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
