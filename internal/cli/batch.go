package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/uconv/internal/config"
	"github.com/rshade/uconv/internal/engine"
	"github.com/rshade/uconv/internal/engine/batch"
)

// batchLine is one parsed input line awaiting conversion.
type batchLine struct {
	number int
	req    engine.Request
	err    error
}

// NewBatchCmd creates the batch command, which converts one "value from to"
// request per input line.
func NewBatchCmd() *cobra.Command {
	var (
		toFlag    string
		workers   int
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert many quantities, one per line",
		Long: `Reads conversions from a file, or standard input when no file or "-" is given.

Each line holds "<value> <from_units> [to_units]" in the same forms the root
command accepts. Blank lines and lines starting with # are skipped. Lines are
converted concurrently and printed in input order. The command exits with
status 1 if any line fails.`,
		Example: `  # Convert a file of requests
  uconv batch conversions.txt

  # Convert from standard input, everything to metres
  printf '1 mile\n3 ft\n' | uconv batch --to m

  # Emit JSON results
  uconv batch conversions.txt -o json

  # Convert sequentially, 16 lines at a time
  uconv batch conversions.txt --workers 1 --batch-size 16`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening batch file: %w", err)
				}
				defer f.Close()
				in = f
			}
			opts := []engine.Option{engine.WithBatchSize(batchSize)}
			if workers > 0 {
				opts = append(opts, engine.WithConcurrency(workers))
			}
			return runBatch(cmd, in, toFlag, engine.New(opts...))
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "", "destination units for lines that give only a source unit")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (0 means one per CPU)")
	cmd.Flags().IntVar(&batchSize, "batch-size", batch.DefaultBatchSize,
		fmt.Sprintf("lines per worker batch (%d-%d)", batch.MinBatchSize, batch.MaxBatchSize))

	return cmd
}

func runBatch(cmd *cobra.Command, in io.Reader, toFlag string, eng *engine.Engine) error {
	ctx := cmd.Context()

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	lines, err := readBatchLines(in, toFlag, config.GetGlobalConfig(), settings)
	if err != nil {
		return err
	}

	audit := newAuditContext(ctx, "batch", map[string]string{"lines": strconv.Itoa(len(lines))})
	results, err := convertBatchLines(ctx, eng, lines)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	if err = renderBatch(cmd, settings.Format, results); err != nil {
		return err
	}

	if failed > 0 {
		summary := fmt.Errorf("%d of %d conversions failed", failed, len(results))
		audit.logFailure(ctx, summary)
		return &ExitError{Code: 1, Err: summary}
	}
	audit.logSuccess(ctx, len(results), "")
	return nil
}

// readBatchLines parses every non-blank, non-comment line. Lines that fail to
// parse are kept with their error so they are reported in order.
func readBatchLines(
	in io.Reader,
	toFlag string,
	cfg *config.Config,
	settings conversionSettings,
) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		line := batchLine{number: n}
		q, err := parseConversionArgs(strings.Fields(text))
		if err == nil {
			err = resolveDestination(&q, toFlag, cfg)
		}
		line.err = err
		line.req = engine.Request{
			Value:        q.Value,
			From:         q.From,
			To:           q.To,
			ForceDecimal: settings.ForceDecimal,
			Precision:    settings.Precision,
			PreferIEC:    settings.PreferIEC,
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}
	return lines, nil
}

// convertBatchLines sends the parseable lines to the engine and merges the
// results back in input order, numbered by source line.
func convertBatchLines(
	ctx context.Context,
	eng *engine.Engine,
	lines []batchLine,
) ([]engine.BatchResult, error) {
	reqs := make([]engine.Request, 0, len(lines))
	for _, l := range lines {
		if l.err == nil {
			reqs = append(reqs, l.req)
		}
	}

	converted, err := eng.ConvertBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	results := make([]engine.BatchResult, 0, len(lines))
	next := 0
	for _, l := range lines {
		if l.err != nil {
			results = append(results, engine.BatchResult{Line: l.number, Request: l.req, Error: l.err.Error()})
			continue
		}
		r := converted[next]
		next++
		r.Line = l.number
		results = append(results, r)
	}
	return results, nil
}

// renderBatch prints successes to stdout and failures to stderr for text
// output, or the whole result set as json/yaml.
func renderBatch(cmd *cobra.Command, format string, results []engine.BatchResult) error {
	if format != config.FormatText {
		return writeStructured(cmd.OutOrStdout(), format, results)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Failed() {
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: Error: %s\n", r.Line, r.Error)
			continue
		}
		if _, err := fmt.Fprintf(out, "%s = %s\n", r.Result.FromText, r.Result.Text); err != nil {
			return err
		}
	}
	return nil
}
