package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/pkg/cache"
)

// cacheCommand groups the local cache subcommands. The Redis backend is
// shared and is not managed from here.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local run and artifact cache",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached runs and artifacts",
			Args:  cobra.NoArgs,
			RunE:  runCacheClear,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("locate cache: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
				return err
			},
		},
	)
	return cmd
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("locate cache: %w", err)
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		printInfo("Nothing cached in %s", dir)
		return nil
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	n, err := fc.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}
	printSuccess("Removed %d cache entries", n)
	printFile(dir)
	return nil
}
