package main

import (
	"github.com/spf13/cobra"

	"boardpull/internal/monday"
)

var listFlags struct {
	groupID string
	limit   int
	all     bool
	partial bool
}

var listCmd = &cobra.Command{
	Use:   "list <board-id>",
	Short: "List the items of a board",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	f := listCmd.Flags()
	f.StringVarP(&listFlags.groupID, "group", "g", "", "Restrict to one group of the board")
	f.IntVar(&listFlags.limit, "limit", 0, "Page size (default from config)")
	f.BoolVar(&listFlags.all, "all", false, "Follow pagination until every page is consumed")
	f.BoolVar(&listFlags.partial, "partial", false, "With --all: keep pages fetched before a failure")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	var opts []monday.ListOption
	if listFlags.groupID != "" {
		opts = append(opts, monday.WithGroup(listFlags.groupID))
	}
	if listFlags.limit > 0 {
		opts = append(opts, monday.WithLimit(listFlags.limit))
	}
	if listFlags.all {
		opts = append(opts, monday.WithReturnAll())
	}
	if listFlags.partial {
		opts = append(opts, monday.WithPartialResults())
	}

	items, err := client.Items().ListByBoard(cmd.Context(), args[0], opts...)
	if err != nil && len(items) == 0 {
		return err
	}
	if printErr := printJSON(cmd.OutOrStdout(), items); printErr != nil {
		return printErr
	}
	// With --partial a truncated listing still fails loudly after printing.
	return err
}
