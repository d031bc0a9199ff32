package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/retrosave/savekit"
)

// NewScanCommand builds the scan subcommand: walk a directory, classify
// every file whose base name matches the glob pattern, and print a
// per-kind summary.
func NewScanCommand(defaultPattern string) *cobra.Command {
	var (
		pattern string
		refPath string
	)

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Classify every matching file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, err := glob.Compile(pattern)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}

			ref, err := loadReference(refPath)
			if err != nil {
				return err
			}

			counts := make(map[savekit.Kind]int)
			err = filepath.WalkDir(args[0], func(path string, d fs.DirEntry, walkErr error) error {
				if walkErr != nil {
					return walkErr
				}
				if d.IsDir() || !matcher.Match(d.Name()) {
					return nil
				}

				res := savekit.DetectFromPath(path, ref)
				counts[res.Kind]++
				fmt.Fprintln(cmd.OutOrStdout(), FormatResult(path, res))
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			for _, k := range []savekit.Kind{
				savekit.KindSaveContainer,
				savekit.KindMemoryCard,
				savekit.KindEntity,
				savekit.KindEntityList,
				savekit.KindBattleVideo,
				savekit.KindGift,
				savekit.KindNone,
			} {
				if counts[k] > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", k, counts[k])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", defaultPattern, "Glob pattern applied to file base names")
	cmd.Flags().StringVar(&refPath, "ref", "", "Reference save container used to disambiguate box dumps")
	return cmd
}
