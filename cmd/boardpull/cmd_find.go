package main

import (
	"github.com/spf13/cobra"

	"boardpull/internal/monday"
)

var findFlags struct {
	all bool
}

var findCmd = &cobra.Command{
	Use:   "find <board-id> <column-id> <value>",
	Short: "List the items of a board whose column matches a value",
	Args:  cobra.ExactArgs(3),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findFlags.all, "all", false, "Follow pagination until every page is consumed")
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	var opts []monday.ListOption
	if findFlags.all {
		opts = append(opts, monday.WithReturnAll())
	}

	items, err := client.Items().ListByColumnValue(cmd.Context(), args[0], args[1], args[2], opts...)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), items)
}
