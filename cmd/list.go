package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/s0up4200/puxbay-go/config"
	"github.com/s0up4200/puxbay-go/filter"
	"github.com/s0up4200/puxbay-go/puxbay"
)

var (
	listParams puxbay.ListParams
	filterExpr string
	presets    []string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List one page of a resource",
	Long: `List one page of products, orders, customers or any other collection.

The optional --filter expression (or a --preset from the config file) is
evaluated locally against each record on the page, for example:

  puxbay list products --filter 'is_active and stock_quantity < 5'
  puxbay list orders --status completed --filter 'total_amount > 100'
  puxbay list customers --filter 'icontains(email, "@example.com")'

icontains, istartsWith and iendsWith match case-insensitively; the
contains, startsWith and endsWith operators (name contains "x") do not.

Repeat --preset, or pass --preset all, to count the matches of several
presets against the same page instead of listing records:

  puxbay list products --preset restock --preset expensive
  puxbay list products --preset all`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	flags := listCmd.Flags()
	flags.IntVar(&listParams.Page, "page", 1, "page number")
	flags.IntVar(&listParams.PageSize, "page-size", 0, "results per page (server default when 0)")
	flags.StringVar(&listParams.Search, "search", "", "server-side search term")
	flags.StringVar(&listParams.Status, "status", "", "filter by status")
	flags.StringVar(&listParams.Branch, "branch", "", "filter by branch ID")
	flags.StringVarP(&filterExpr, "filter", "f", "", "filter expression evaluated per record")
	flags.StringSliceVarP(&presets, "preset", "p", nil, "use preset filters from config (repeatable, or \"all\")")
	listCmd.MarkFlagsMutuallyExclusive("filter", "preset")
}

func runList(cmd *cobra.Command, args []string) error {
	res, err := lookupResource(client, args[0])
	if err != nil {
		return err
	}

	summary, err := selectPresets()
	if err != nil {
		return err
	}

	var f filter.CompiledFilter
	if summary == nil {
		if f, err = selectFilter(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	count, records, err := res.list(ctx, &listParams)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", args[0], err)
	}

	if summary != nil {
		return runPresetSummary(cmd, args[0], summary, count, records)
	}

	matches, err := filters.Apply(ctx, f, records)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("resource", args[0]).
		Int("total", count).
		Int("page_results", len(records)).
		Int("matches", len(matches)).
		Msg("Listed records")

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return writeJSON(out, matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(out, "No records found.")
		return nil
	}
	if err := writeTable(out, res.columns, matches); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nShowing %d of %d %s (page %d)\n", len(matches), count, args[0], listParams.Page)
	return nil
}

// selectPresets returns the preset names to summarize, or nil when at most
// one preset was asked for.
func selectPresets() ([]string, error) {
	if len(presets) < 2 && !slices.Contains(presets, config.AllPresets) {
		return nil, nil
	}

	if slices.Contains(presets, config.AllPresets) {
		names := filters.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("no presets configured")
		}
		return names, nil
	}

	names := slices.Compact(slices.Sorted(slices.Values(presets)))
	for _, name := range names {
		if _, ok := filters.Lookup(name); !ok {
			return nil, fmt.Errorf("preset '%s' not found in config (available: %v)", name, filters.Names())
		}
	}
	return names, nil
}

// selectFilter resolves --filter or a single --preset. No filter is not an error.
func selectFilter() (filter.CompiledFilter, error) {
	if filterExpr != "" {
		f, err := filters.Compiler().Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	}

	if len(presets) == 1 {
		f, ok := filters.Lookup(presets[0])
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config (available: %v)", presets[0], filters.Names())
		}
		return f, nil
	}

	return nil, nil
}

func runPresetSummary(cmd *cobra.Command, resource string, names []string, count int, records []filter.Record) error {
	results, err := filters.EvaluatePresets(cmd.Context(), names, records)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := results[name].Error; err != nil {
			return fmt.Errorf("preset '%s': %w", name, err)
		}
	}

	logger.Debug().
		Str("resource", resource).
		Int("presets", len(names)).
		Int("page_results", len(records)).
		Msg("Evaluated presets")

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		matches := make(map[string][]filter.Record, len(names))
		for _, name := range names {
			matches[name] = results[name].Matches
		}
		return writeJSON(out, matches)
	}

	writeSummary(out, names, results)
	fmt.Fprintf(out, "\nEvaluated %d presets against %d of %d %s (page %d)\n",
		len(names), len(records), count, resource, listParams.Page)
	return nil
}

func writeSummary(out io.Writer, names []string, results map[string]filter.BatchResult) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("PRESET", "EXPRESSION", "MATCHES")
	for _, name := range names {
		expression := ""
		if f, ok := filters.Lookup(name); ok {
			expression = f.Expression()
		}
		table.AddRow(name, expression, len(results[name].Matches))
	}
	fmt.Fprintln(out, table)
}
