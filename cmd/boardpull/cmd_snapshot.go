package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardpull/internal/snapshot"
	"boardpull/internal/store"
)

var snapshotFlags struct {
	dbPath   string
	parallel int
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [board-id...]",
	Short: "Fetch boards in full and persist them to the local store",
	Long: "Fetches every item of the given boards (or the boards listed in the\n" +
		"config file) and saves one snapshot per board to the SQLite store.",
	RunE: runSnapshot,
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVar(&snapshotFlags.dbPath, "db", store.DefaultDBPath, "Store DB path")
	f.IntVar(&snapshotFlags.parallel, "parallel", 1, "Boards fetched concurrently (pages stay sequential)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	boards := args
	if len(boards) == 0 {
		boards = cfg.Boards
	}
	if len(boards) == 0 {
		return fmt.Errorf("no boards: pass board IDs or set boards in the config file")
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(snapshotFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	fetcher := snapshot.NewClientFetcher(client)
	if err := snapshot.RefreshAll(cmd.Context(), fetcher, st, boards, snapshotFlags.parallel); err != nil {
		return err
	}

	infos, err := st.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, info := range infos {
		fmt.Fprintf(out, "board %s: %d items (taken %s)\n", info.BoardID, info.ItemCount, info.TakenAt)
	}
	return nil
}
