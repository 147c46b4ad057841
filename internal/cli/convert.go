package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/uconv/internal/config"
	"github.com/rshade/uconv/internal/engine"
	"github.com/rshade/uconv/internal/logging"
)

// runConvert performs the root command's conversion of "<value> <from> [to]".
func runConvert(cmd *cobra.Command, args []string, toFlag string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	q, err := parseConversionArgs(args)
	if err != nil {
		return err
	}
	if err = resolveDestination(&q, toFlag, config.GetGlobalConfig()); err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	req := engine.Request{
		Value:        q.Value,
		From:         q.From,
		To:           q.To,
		ForceDecimal: settings.ForceDecimal,
		Precision:    settings.Precision,
		PreferIEC:    settings.PreferIEC,
	}
	audit := newAuditContext(ctx, "convert", requestParams(req))

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "convert").
		Str("value_text", q.ValueText).
		Str("format", settings.Format).
		Msg("parsed conversion arguments")

	result, err := engine.New().Convert(ctx, req)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}
	audit.logSuccess(ctx, 1, result.Text)

	return renderResult(cmd.OutOrStdout(), settings.Format, result)
}

// resolveDestination fills q.To from --to or the configured default for
// q.From when only one unit was typed.
func resolveDestination(q *quantity, toFlag string, cfg *config.Config) error {
	switch {
	case q.To != "" && toFlag != "":
		return fmt.Errorf("%w: destination given both as an argument and with --to", ErrWrongArgCount)
	case q.To != "":
		return nil
	case toFlag != "":
		q.To = toFlag
		return nil
	}

	if to, ok := cfg.DefaultToUnits(q.From); ok {
		q.To = to
		return nil
	}
	return fmt.Errorf("%w: no destination units for %q (add them, use --to, or set defaults.to_units)",
		ErrWrongArgCount, q.From)
}

// renderResult prints "<from> = <to>" for text output, or the full result.
func renderResult(w io.Writer, format string, result *engine.Result) error {
	if format == config.FormatText {
		_, err := fmt.Fprintf(w, "%s = %s\n", result.FromText, result.Text)
		return err
	}
	return writeStructured(w, format, result)
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
