package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/jarvis-go/internal/app"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/cli/helpers"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect dispatched commands",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
		newHistoryStatsCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.OutOrStdout(), container, limit, "")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show")
	return cmd
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search history for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf("--query required")
			}
			return listHistoryEntries(cmd.OutOrStdout(), container, searchLimit, query)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&searchLimit, "limit", DefaultHistorySearchLimit, "Limit search results")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear dispatch history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearHistory(container)
		},
	}
}

// newHistoryStatsCommand creates the 'history stats' subcommand
func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show intent distribution and handled rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryStats(cmd.OutOrStdout(), container)
		},
	}
}

// listHistoryEntries lists history entries, optionally filtered by a keyword
func listHistoryEntries(out io.Writer, container *app.Container, limit int, search string) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	records, err := store.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			rec.Timestamp.Format(TimestampFormat),
			rec.Source,
			rec.Intent,
			rec.Command)
	}

	return nil
}

// clearHistory clears the history store
func clearHistory(container *app.Container) error {
	if container.HistoryStore == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	if err := container.HistoryStore.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}

// showHistoryStats displays handled rate and top intents
func showHistoryStats(out io.Writer, container *app.Container) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	records, err := store.Records(MaxHistoryAnalysisRecords, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve history for analysis: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	stats := analyzeHistoryRecords(records)
	displayHistoryStatistics(out, stats, records)

	return nil
}

// historyStatistics holds analyzed history statistics
type historyStatistics struct {
	handled      int
	intentCounts map[string]int
	sourceCounts map[domain.Source]int
}

// analyzeHistoryRecords analyzes history records and computes statistics
func analyzeHistoryRecords(records []domain.HistoryRecord) historyStatistics {
	stats := historyStatistics{
		intentCounts: make(map[string]int),
		sourceCounts: make(map[domain.Source]int),
	}

	for _, rec := range records {
		if rec.Handled {
			stats.handled++
		}
		stats.intentCounts[string(rec.Intent)]++
		stats.sourceCounts[rec.Source]++
	}

	return stats
}

// displayHistoryStatistics displays formatted history statistics
func displayHistoryStatistics(out io.Writer, stats historyStatistics, records []domain.HistoryRecord) {
	fmt.Fprintf(out, "Entries analyzed: %d\nHandled: %d\nHandled rate: %.1f%%\n",
		len(records),
		stats.handled,
		helpers.CalculateHandledRate(stats.handled, len(records)))

	fmt.Fprintln(out, "Top intents:")
	topIntents := helpers.CalculateTopEntries(stats.intentCounts, 5)
	for _, stat := range topIntents {
		fmt.Fprintf(out, "  %s (%d)\n", stat.Name, stat.Count)
	}

	fmt.Fprintln(out, "Sources:")
	for source, count := range stats.sourceCounts {
		fmt.Fprintf(out, "  %s: %d\n", source, count)
	}
}
