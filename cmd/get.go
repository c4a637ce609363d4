package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:     "get <resource> <id>",
	Short:   "Print one record as JSON",
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeApp,
	RunE:    runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	res, err := lookupResource(client, args[0])
	if err != nil {
		return err
	}

	record, err := res.get(cmd.Context(), args[1])
	if err != nil {
		return fmt.Errorf("failed to get %s %s: %w", args[0], args[1], err)
	}

	return writeJSON(cmd.OutOrStdout(), record)
}
