package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddTranscript()
			c.AddEncoded()
			c.AddValid()
			c.AddLabel("play")
		}()
	}
	wg.Wait()
	c.AddFailure()
	c.AddInvalid()
	c.AddLabel("invalid")

	m := c.Complete()
	require.Equal(t, 20, m.Transcripts)
	require.Equal(t, 20, m.Encoded)
	require.Equal(t, 1, m.Failed)
	require.Equal(t, 20, m.Valid)
	require.Equal(t, 1, m.Invalid)
	require.Equal(t, map[string]int{"play": 20, "invalid": 1}, m.Labels)

	m.Labels["play"] = 0
	require.Equal(t, 20, c.Complete().Labels["play"], "Complete returns a copy")

	d := NewDummyCollector()
	d.AddValid()
	d.AddLabel("play")
	require.Zero(t, d.Complete().Valid)
	require.Empty(t, d.Complete().Labels)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("setup manifest", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, w.WriteSetup(map[string]int{"seed": 42}, start, start.Add(time.Minute), RunMetric{Samples: 3}))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var setup Setup
		require.NoError(t, json.Unmarshal(data, &setup))
		require.Equal(t, time.Minute, setup.Duration)
		require.Equal(t, 3, setup.Metric.Samples)
	})

	t.Run("failures", func(t *testing.T) {
		require.NoError(t, w.WriteFailures([]FailureRecord{{Source: "a.txt", Game: 2, Line: 4, Reason: "bad"}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "failures.csv"))
		require.Equal(t, [][]string{{"source", "game", "line", "reason"}, {"a.txt", "2", "4", "bad"}}, rows)
	})

	t.Run("label distribution", func(t *testing.T) {
		require.NoError(t, w.WriteLabels(map[string]int{"play": 1, "discard": 3}))
		rows := readCSV(t, filepath.Join(w.Dir(), "labels.csv"))
		require.Equal(t, [][]string{
			{"class", "count", "percent"},
			{"discard", "3", "75.00"},
			{"play", "1", "25.00"},
		}, rows)
	})
}
