package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/puxbay-go/puxbay"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to the Puxbay API",
	Long:    `Check that the API key is accepted and print record counts for the main resources.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintf(out, "Testing connection to %s...\n", cfg.API.BaseURL)
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	counts, err := countResources(ctx, client, "products", "orders", "customers", "branches")
	if err != nil {
		return err
	}

	table := uitable.New()
	table.Separator = "  "
	for _, name := range []string{"products", "orders", "customers", "branches"} {
		table.AddRow("- "+name+":", counts[name])
	}
	fmt.Fprintf(out, "\nStore Statistics:\n%s\n", table)

	return nil
}

// countResources fetches the first page of each resource concurrently and
// returns the server-reported totals.
func countResources(ctx context.Context, c *puxbay.Client, names ...string) (map[string]int, error) {
	all := resources(c)
	params := &puxbay.ListParams{Page: 1, PageSize: 1}

	var mu sync.Mutex
	counts := make(map[string]int, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		res, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("unknown resource %q", name)
		}
		g.Go(func() error {
			count, _, err := res.list(gctx, params)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", name, err)
			}
			mu.Lock()
			counts[name] = count
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
