package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/retrosave/savekit"
)

// logger is shared by all commands; main installs the configured one.
var logger = logrus.StandardLogger()

// SetLogger installs the logger used by all commands.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// NewDetectCommand builds the detect subcommand: classify one or more
// files and print one line per result.
func NewDetectCommand() *cobra.Command {
	var refPath string

	cmd := &cobra.Command{
		Use:   "detect [files...]",
		Short: "Classify individual dump files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := loadReference(refPath)
			if err != nil {
				return err
			}

			for _, path := range args {
				res := savekit.DetectFromPath(path, ref)
				fmt.Fprintln(cmd.OutOrStdout(), FormatResult(path, res))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&refPath, "ref", "", "Reference save container used to disambiguate box dumps")
	return cmd
}

// loadReference detects a save container at path and derives the slot
// geometry context from it. An empty path yields no context.
func loadReference(path string) (*savekit.ReferenceContext, error) {
	if path == "" {
		return nil, nil
	}
	res := savekit.DetectFromPath(path, nil)
	if res.Kind != savekit.KindSaveContainer {
		return nil, fmt.Errorf("reference %s is not a recognizable save container", path)
	}
	return savekit.NewReference(res.Container), nil
}

// FormatResult renders one detection outcome as a report line.
func FormatResult(path string, res *savekit.DetectionResult) string {
	var detail string
	switch res.Kind {
	case savekit.KindSaveContainer:
		detail = fmt.Sprintf("%s gen%d, %d slots", res.Container.Name, res.Container.Generation, res.Container.SlotCount())
	case savekit.KindMemoryCard:
		detail = fmt.Sprintf("%d blocks", res.MemoryCard.BlockCount())
	case savekit.KindEntity:
		kind := "stored"
		if res.Entity.Party {
			kind = "party"
		}
		detail = fmt.Sprintf("gen%d %s record, %d bytes", res.Entity.Generation, kind, res.Entity.Len())
	case savekit.KindEntityList:
		detail = fmt.Sprintf("%d records", len(res.Entities))
	case savekit.KindBattleVideo:
		detail = fmt.Sprintf("%s gen%d", res.Video.Name, res.Video.Generation)
	case savekit.KindGift:
		detail = fmt.Sprintf("%s gen%d", strings.TrimPrefix(res.Gift.Ext, "."), res.Gift.Generation)
	default:
		return fmt.Sprintf("%s: unrecognized", path)
	}

	return fmt.Sprintf("%s: %s (%s) %s", path, res.Kind, detail, fingerprintOf(res))
}

// fingerprintOf fingerprints the payload that was actually recognized.
func fingerprintOf(res *savekit.DetectionResult) string {
	switch res.Kind {
	case savekit.KindSaveContainer:
		return savekit.Fingerprint(res.Container.Bytes())
	case savekit.KindMemoryCard:
		return savekit.Fingerprint(res.MemoryCard.Bytes())
	case savekit.KindEntity:
		return savekit.Fingerprint(res.Entity.Bytes())
	case savekit.KindBattleVideo:
		return savekit.Fingerprint(res.Video.Bytes())
	case savekit.KindGift:
		return savekit.Fingerprint(res.Gift.Bytes())
	case savekit.KindEntityList:
		joined := make([]byte, 0)
		for _, slot := range res.Entities {
			joined = append(joined, slot...)
		}
		return savekit.Fingerprint(joined)
	default:
		return ""
	}
}
