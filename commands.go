package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"hanabi/codec"
	"hanabi/dataset"
	"hanabi/metrics"
	"hanabi/validate"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var encodeStrict bool

var encodeCmd = &cobra.Command{
	Use:   "encode FILE...",
	Short: "Encode every game of the transcript files, one sequence per line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := bufio.NewWriter(cmd.OutOrStdout())
		defer out.Flush()

		dropped := 0
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read transcripts: %w", err)
			}
			encoded, failures, err := dataset.EncodeAll(cmd.Context(), dataset.SplitTranscripts(path, string(content)), cfg.Dataset.Workers, nil)
			if err != nil {
				return err
			}
			dropped += len(failures)
			for _, e := range encoded {
				fmt.Fprintln(out, e.Sequence.String())
			}
		}
		if encodeStrict && dropped > 0 {
			return fmt.Errorf("%d transcripts failed to encode", dropped)
		}
		return nil
	},
}

var (
	genSeed    uint64
	genSamples int
	genOutput  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build composite training samples from full and prediction game files",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := &cfg.Dataset
		if cmd.Flags().Changed("seed") {
			d.Seed = genSeed
		}
		if cmd.Flags().Changed("samples-per-pair") {
			d.SamplesPerPair = genSamples
		}
		if cmd.Flags().Changed("output") {
			d.Output = genOutput
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		start := time.Now()
		collector := metrics.NewCollector()
		gen := dataset.NewGenerator(d.FullGamesDir, d.PredictionGamesDir, d.Bots,
			dataset.WithSeed(d.Seed),
			dataset.WithContextGames(d.ContextGames),
			dataset.WithSamplesPerPair(d.SamplesPerPair),
			dataset.WithWorkers(d.Workers),
			dataset.WithMetrics(collector),
		)
		samples, err := gen.Generate(cmd.Context())
		if err != nil {
			return err
		}
		if len(samples) == 0 {
			log.Warn().Msg("no training samples generated")
			return nil
		}

		records := make([]dataset.Record, 0, len(samples))
		for _, s := range samples {
			records = append(records, dataset.Format(s))
			class, _ := codec.Classify(s.Label)
			collector.AddLabel(class.String())
		}
		if err := dataset.WriteRecords(d.Output, records); err != nil {
			return err
		}
		log.Info().Msgf("generated %d training samples into %s", len(samples), d.Output)

		return writeRunMetrics(d.MetricsDir, start, collector.Complete(), gen.Failures())
	},
}

func writeRunMetrics(dir string, start time.Time, metric metrics.RunMetric, failures []dataset.Failure) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := writer.WriteSetup(cfg, start, time.Now(), metric); err != nil {
		return err
	}
	records := make([]metrics.FailureRecord, 0, len(failures))
	for _, f := range failures {
		records = append(records, f.Record())
	}
	if err := writer.WriteFailures(records); err != nil {
		return err
	}
	if err := writer.WriteLabels(metric.Labels); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored run metrics")
	return nil
}

var (
	valMax     int
	valAnalyze bool
	valOutput  string
)

type invalidSample struct {
	SampleIndex int      `json:"sample_index"`
	Issues      []string `json:"issues"`
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check encoded training samples for structural and range errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := dataset.ReadRecords(args[0])
		if err != nil {
			return err
		}
		if valMax > 0 && valMax < len(records) {
			records = records[:valMax]
		}

		v := validate.New(validate.WithContextGames(cfg.Dataset.ContextGames))
		samples := make([]validate.Sample, len(records))
		for i, r := range records {
			samples[i] = dataset.ParseRecord(r, i)
		}
		results := v.CheckAll(samples)
		summary := v.Summary()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Validated %d samples: %d valid, %d invalid\n", summary.Total, summary.Valid, summary.Invalid)
		if summary.Total > 0 {
			fmt.Fprintf(out, "Validation rate: %.2f%%\n", float64(summary.Valid)/float64(summary.Total)*100)
		}
		if valAnalyze {
			printLabels(cmd, summary.Labels, summary.Total)
		}

		if valOutput != "" && len(results) > 0 {
			if err := writeInvalid(valOutput, results); err != nil {
				return err
			}
			log.Info().Msgf("detailed validation results written to %s", valOutput)
		}
		if summary.Invalid > 0 {
			return fmt.Errorf("%d of %d samples are invalid", summary.Invalid, summary.Total)
		}
		return nil
	},
}

func printLabels(cmd *cobra.Command, labels map[string]int, total int) {
	classes := make([]string, 0, len(labels))
	for class := range labels {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Prediction distribution by move type:")
	for _, class := range classes {
		fmt.Fprintf(out, "  %s: %d (%.2f%%)\n", class, labels[class], float64(labels[class])/float64(total)*100)
	}
}

func writeInvalid(path string, results []validate.Result) error {
	rows := make([]invalidSample, 0, len(results))
	for _, r := range results {
		row := invalidSample{SampleIndex: r.Index}
		for _, issue := range r.Issues {
			row.Issues = append(row.Issues, issue.Error())
		}
		rows = append(rows, row)
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write validation results: %w", err)
	}
	return nil
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeStrict, "strict", false, "fail when any transcript cannot be encoded")

	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "sampling seed (overrides config)")
	generateCmd.Flags().IntVar(&genSamples, "samples-per-pair", 0, "samples drawn per bot pairing (overrides config)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "sample JSON file (overrides config)")

	validateCmd.Flags().IntVar(&valMax, "max", 0, "validate at most this many samples")
	validateCmd.Flags().BoolVar(&valAnalyze, "analyze", false, "print the label distribution")
	validateCmd.Flags().StringVar(&valOutput, "output", "", "write invalid samples and their issues to this JSON file")
}
