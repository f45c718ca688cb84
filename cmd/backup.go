/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/josephgoksu/todo/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup <dest>",
	Short: "Write a snapshot of all tasks to a file",
	Long: `Write a snapshot of all tasks to dest. The format follows the file
extension (.json, .yaml/.yml or .toml) unless --format is given.

Examples:
  todo backup ~/tasks-backup.json
  todo backup tasks.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <src>",
	Short: "Replace all tasks with the contents of a snapshot file",
	Long: `Replace all tasks with the contents of src, which must be a snapshot
written by 'todo backup' or a plain array of tasks.

IDs from the snapshot are kept and new tasks continue after the highest one.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

// snapshotFile returns a file persistence for path, using the format of its
// extension unless --format was set explicitly.
func snapshotFile(cmd *cobra.Command, path string) (*store.FilePersistence, error) {
	format := ""
	if cmd.Flags().Changed("format") {
		format = GetConfig().Data.Format
	}
	return store.NewFilePersistence(afero.NewOsFs(), path, format)
}

func runBackup(cmd *cobra.Command, args []string) error {
	dst, err := snapshotFile(cmd, args[0])
	if err != nil {
		return err
	}

	ts, err := openStore()
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	n, err := store.Backup(ts, dst)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d task(s) to %s\n", n, dst.Location())
	}
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	src, err := snapshotFile(cmd, args[0])
	if err != nil {
		return err
	}
	// A missing snapshot would load as empty and wipe the store.
	if _, err := os.Stat(src.Location()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("snapshot not found: %s", src.Location())
		}
		return err
	}

	ts, err := openStore()
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	n, err := store.RestoreFrom(ts, src)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d task(s) from %s\n", n, src.Location())
	}
	return nil
}
