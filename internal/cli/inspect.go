package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-artifex/internal/imaging"
	"github.com/ironsheep/image-artifex/internal/transform"
)

// inspectCommand prints an image's metadata and background profile.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect SOURCE",
		Short: "Show an image's format, size and border colours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := imaging.Load(args[0])
			if err != nil {
				return err
			}
			im, err := transform.FromSource(src, c.imageOptions()...)
			if err != nil {
				return err
			}
			info := &src.Info
			report := imaging.DescribeProfile(im.Background())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					*imaging.ImageInfo
					Background imaging.BackgroundReport `json:"background"`
				}{info, report})
			}
			printInspect(cmd.OutOrStdout(), args[0], info, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func printInspect(w io.Writer, path string, info *imaging.ImageInfo, report imaging.BackgroundReport) {
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  format:  %s (%s)\n", info.Format, info.MimeType)
	fmt.Fprintf(w, "  size:    %dx%d, %d bytes\n", info.Width, info.Height, info.FileSizeBytes)
	fmt.Fprintf(w, "  edges:\n")
	for _, e := range report.Edges {
		mark := " "
		if e.Defined {
			mark = "*"
		}
		fmt.Fprintf(w, "   %s %-6s %s alpha %3d  %5.1f%%\n", mark, e.Edge, e.Color.Hex, e.Color.RGBA.A, e.Share)
	}
	thumb := report.ThumbMode
	if report.ThumbAnchor != "" {
		thumb += " (" + report.ThumbAnchor + ")"
	}
	fmt.Fprintf(w, "  thumb:   %s\n", thumb)
}
