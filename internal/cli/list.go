package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/uconv/internal/cli/pagination"
	"github.com/rshade/uconv/internal/config"
	"github.com/rshade/uconv/internal/engine"
	"github.com/rshade/uconv/internal/logging"
	"github.com/rshade/uconv/internal/tui"
	"github.com/rshade/uconv/internal/units"
)

// combinationHint closes the text listing.
const combinationHint = "Units can be used in combination: m/sec, lumen/sqinch, J.sec/kg etc"

// tabwriterPadding is the minimum padding between columns in the unit table.
const tabwriterPadding = 2

// errNotInteractive is returned by --interactive when stdout is not a terminal.
var errNotInteractive = errors.New("--interactive requires a terminal")

// isInteractive reports whether the TUI browser can run. Tests replace it.
//
//nolint:gochecknoglobals // Test seam for TTY detection.
var isInteractive = tui.IsTTY

// catalogListing is the json/yaml shape of "uconv list".
type catalogListing struct {
	Units      []units.CatalogEntry      `json:"units"      yaml:"units"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

type listOptions struct {
	filters     []string
	interactive bool
	page        *pagination.PaginationParams
}

// NewListCmd creates the list command, which shows the unit catalog.
func NewListCmd() *cobra.Command {
	opts := listOptions{page: pagination.NewPaginationParams()}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available units",
		Long: `Lists every unit uconv knows with its description and synonyms.

Any name or synonym can be combined with SI prefixes (kilo, k, milli, ...) and
exponents (m2, sq, cubic) in a conversion.`,
		Example: `  # Show the whole catalog
  uconv list

  # Units whose name, description or synonyms mention "byte"
  uconv list --filter byte

  # Only match synonyms, sorted by name descending
  uconv list --filter synonym=ft --sort name:desc

  # Second page of 20 units as JSON
  uconv list --page 2 --page-size 20 -o json

  # Browse interactively
  uconv list --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil,
		"filter units by text, or by name=, description= or synonym= (repeatable)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the catalog in a terminal UI")
	opts.page.AddFlags(cmd, "sort by field[:asc|desc] (fields: "+
		strings.Join(pagination.NewCatalogSorter().GetValidFields(), ", ")+")")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()

	if err := opts.page.Validate(); err != nil {
		return err
	}
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	entries, err := ApplyFilters(ctx, engine.New().Catalog(ctx), opts.filters)
	if err != nil {
		return err
	}
	entries, err = pagination.SortWith[units.CatalogEntry](pagination.NewCatalogSorter(), entries, opts.page.Sort)
	if err != nil {
		return err
	}

	if opts.interactive {
		if !isInteractive() {
			return errNotInteractive
		}
		return tui.RunCatalogBrowser(ctx, entries, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	window := pagination.Apply(*opts.page, entries)

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "list").
		Int("matched", len(entries)).
		Int("shown", len(window)).
		Msg("rendering catalog")

	if settings.Format == config.FormatText {
		return renderCatalogTable(cmd.OutOrStdout(), window, len(entries))
	}
	return writeStructured(cmd.OutOrStdout(), settings.Format, catalogListing{
		Units:      window,
		Pagination: pagination.NewPaginationMeta(*opts.page, len(entries)),
	})
}

// renderCatalogTable writes the aligned unit table, a count line and the
// combination hint.
func renderCatalogTable(w io.Writer, entries []units.CatalogEntry, total int) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION\tSYNONYMS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Description, strings.Join(e.Synonyms, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	fmt.Fprintln(w)
	if len(entries) < total {
		p.Fprintf(w, "Showing %d of %d units\n", len(entries), total)
	} else {
		p.Fprintf(w, "%d units\n", total)
	}
	_, err := fmt.Fprintln(w, combinationHint)
	return err
}
