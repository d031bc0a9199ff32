package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/retrosave/savekit"
)

// NewWatchCommand builds the watch subcommand: monitor a directory and
// classify files as they are created or rewritten. Runs until
// interrupted.
func NewWatchCommand() *cobra.Command {
	var refPath string

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Monitor a directory and classify new dump files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := loadReference(refPath)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(args[0]); err != nil {
				return fmt.Errorf("watch %s: %w", args[0], err)
			}
			logger.WithField("dir", args[0]).Info("watching for dump files")

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			for {
				select {
				case <-stop:
					return nil
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.WithError(err).Warn("watch error")
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
						continue
					}
					res := savekit.DetectFromPath(event.Name, ref)
					fmt.Fprintln(cmd.OutOrStdout(), FormatResult(event.Name, res))
				}
			}
		},
	}

	cmd.Flags().StringVar(&refPath, "ref", "", "Reference save container used to disambiguate box dumps")
	return cmd
}
