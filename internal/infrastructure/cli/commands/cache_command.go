package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doeshing/jarvis-go/internal/app"
	"github.com/doeshing/jarvis-go/internal/infrastructure/cli/helpers"
)

// NewCacheCommand creates the cache command with all subcommands
func NewCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the answer cache",
	}

	cacheCmd.AddCommand(
		newCacheListCommand(container),
		newCacheClearCommand(container),
		newCacheSizeCommand(container),
		newCacheConfigCommand(container),
	)

	return cacheCmd
}

// newCacheListCommand creates the 'cache list' subcommand
func newCacheListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCacheEntries(cmd.OutOrStdout(), container)
		},
	}
}

// newCacheClearCommand creates the 'cache clear' subcommand
func newCacheClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearCache(container)
		},
	}
}

// newCacheSizeCommand creates the 'cache size' subcommand
func newCacheSizeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Show cache size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCacheSize(cmd.OutOrStdout(), container)
		},
	}
}

// newCacheConfigCommand creates the 'cache config' subcommand
func newCacheConfigCommand(container *app.Container) *cobra.Command {
	var ttlMinutes int
	var maxEntries int

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Update cache TTL/max entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateCacheConfiguration(cmd.Context(), container, ttlMinutes, maxEntries)
		},
	}

	cmd.Flags().IntVar(&ttlMinutes, "ttl", 0, "Cache TTL in minutes")
	cmd.Flags().IntVar(&maxEntries, "max", 0, "Max cache entries")
	return cmd
}

// listCacheEntries lists all cached answers
func listCacheEntries(out io.Writer, container *app.Container) error {
	if container.CacheStore == nil {
		return fmt.Errorf(ErrCacheStoreUnavailable)
	}

	entries, err := container.CacheStore.Entries()
	if err != nil {
		return fmt.Errorf("failed to retrieve cache entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoCachedAnswers)
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			entry.CreatedAt.Format(TimestampFormat),
			entry.Source,
			entry.Key,
			entry.Query)
	}

	return nil
}

// clearCache clears the cache directory
func clearCache(container *app.Container) error {
	if container.CacheStore == nil {
		return fmt.Errorf(ErrCacheStoreUnavailable)
	}

	if err := container.CacheStore.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// showCacheSize displays the cache directory size
func showCacheSize(out io.Writer, container *app.Container) error {
	if container.CacheStore == nil {
		return fmt.Errorf(ErrCacheStoreUnavailable)
	}

	dir := container.CacheStore.Dir()
	totalSize, err := calculateDirectorySize(dir)
	if err != nil {
		return fmt.Errorf("failed to calculate cache size: %w", err)
	}

	fmt.Fprintf(out, "Cache directory: %s\nSize: %d bytes\n", dir, totalSize)
	return nil
}

// updateCacheConfiguration updates cache TTL and/or max entries
func updateCacheConfiguration(ctx context.Context, container *app.Container, ttlMinutes, maxEntries int) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	updated := cfg.Cache

	if ttlMinutes > 0 {
		updated.TTLMinutes = ttlMinutes
	}
	if maxEntries > 0 {
		updated.MaxEntries = maxEntries
	}

	cfg.Cache = updated

	return helpers.SaveConfigWithValidation(container, cfg)
}

// calculateDirectorySize calculates the total size of a directory
func calculateDirectorySize(dirPath string) (int64, error) {
	var totalSize int64

	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip files that can't be accessed
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		totalSize += info.Size()
		return nil
	})

	if err != nil && !os.IsNotExist(err) {
		return 0, err
	}

	return totalSize, nil
}
