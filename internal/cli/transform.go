package cli

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-artifex/internal/imaging"
	"github.com/ironsheep/image-artifex/internal/transform"
)

// outputFlags are shared by every transform command.
type outputFlags struct {
	out     string
	quality int
	bg      string
}

func (o *outputFlags) register(cmd *cobra.Command, withBackground bool) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", `output file; its extension picks the format, "-" writes to stdout (required)`)
	cmd.Flags().IntVarP(&o.quality, "quality", "q", 0, "JPEG and WEBP quality 1-100 (default from config)")
	if withBackground {
		cmd.Flags().StringVar(&o.bg, "bg", "", `padding background: "auto" or a colour such as #FFFFFF (default from config)`)
	}
	_ = cmd.MarkFlagRequired("out")
}

// sizeArgs parses WIDTH and HEIGHT arguments. A missing height is zero.
func sizeArgs(args []string) (w, h int, err error) {
	if w, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	if len(args) > 1 {
		if h, err = strconv.Atoi(args[1]); err != nil {
			return 0, 0, fmt.Errorf("height: %w", err)
		}
	}
	return w, h, nil
}

// runTransform loads src, applies fn and writes the result.
func (c *CLI) runTransform(cmd *cobra.Command, src string, o outputFlags, fn func(*transform.Image, transform.Background) error) error {
	bg, err := c.background(o.bg)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	im, err := transform.Load(src, c.imageOptions()...)
	if err != nil {
		return err
	}
	if err := fn(im, bg); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return c.write(cmd, im, o, p)
}

var errSaveFailed = errors.New("failed to write image")

func (c *CLI) write(cmd *cobra.Command, im *transform.Image, o outputFlags, p *progress) error {
	q := c.quality(o.quality)

	if o.out == "-" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if !im.Output(w, q) {
			return errSaveFailed
		}
		return w.Flush()
	}

	var ok bool
	f, err := imaging.ParseFormat(filepath.Ext(o.out))
	switch {
	case err != nil:
		ok = im.Save(o.out, q)
	case f == imaging.FormatJPEG:
		ok = im.SaveJPEG(o.out, q)
	case f == imaging.FormatPNG:
		ok = im.SavePNG(o.out)
	case f == imaging.FormatGIF:
		ok = im.SaveGIF(o.out)
	case f == imaging.FormatWEBP:
		ok = im.SaveWEBP(o.out, q)
	}
	if !ok {
		return fmt.Errorf("%w: %s", errSaveFailed, o.out)
	}
	p.done(fmt.Sprintf("Wrote %s (%dx%d)", o.out, im.Width(), im.Height()))
	return nil
}

// transformCommands creates one command per transform.
func (c *CLI) transformCommands() []*cobra.Command {
	return []*cobra.Command{
		c.sizeCommand("resize", "Fit an image inside WIDTH x HEIGHT and pad the rest",
			func(im *transform.Image, w, h int, bg transform.Background) error { return im.Resize(w, h, bg) }),
		c.sizeCommand("cut", "Smart crop an image to exactly WIDTH x HEIGHT",
			func(im *transform.Image, w, h int, bg transform.Background) error { return im.Cut(w, h, bg) }),
		c.sizeCommand("thumb", "Smart thumbnail that continues the image borders into the padding",
			func(im *transform.Image, w, h int, bg transform.Background) error { return im.Thumb(w, h, bg) }),
		c.cropCommand(),
		c.reduceCommand(),
		c.rotateCommand(),
		c.opacityCommand(),
		c.watermarkCommand(),
	}
}

func (c *CLI) sizeCommand(name, short string, apply func(*transform.Image, int, int, transform.Background) error) *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   name + " SOURCE WIDTH [HEIGHT]",
		Short: short,
		Long:  short + ". A width or height of 0 is derived from the other one and the source aspect ratio.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := sizeArgs(args[1:])
			if err != nil {
				return err
			}
			return c.runTransform(cmd, args[0], o, func(im *transform.Image, bg transform.Background) error {
				return apply(im, w, h, bg)
			})
		},
	}
	o.register(cmd, true)
	return cmd
}

func (c *CLI) cropCommand() *cobra.Command {
	var (
		o    outputFlags
		x, y int
	)
	cmd := &cobra.Command{
		Use:   "crop SOURCE WIDTH [HEIGHT]",
		Short: "Cut an unscaled region out of an image",
		Long:  "Cut an unscaled WIDTH x HEIGHT region whose top-left corner is at --x, --y. With only WIDTH the region is square; parts outside the image show the background.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := sizeArgs(args[1:])
			if err != nil {
				return err
			}
			return c.runTransform(cmd, args[0], o, func(im *transform.Image, bg transform.Background) error {
				return im.Crop(x, y, w, h, bg)
			})
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "left edge of the region")
	cmd.Flags().IntVar(&y, "y", 0, "top edge of the region")
	o.register(cmd, true)
	return cmd
}

func (c *CLI) reduceCommand() *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "reduce SOURCE MAX_WIDTH [MAX_HEIGHT]",
		Short: "Shrink an image to fit inside a box, never enlarging it",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := sizeArgs(args[1:])
			if err != nil {
				return err
			}
			return c.runTransform(cmd, args[0], o, func(im *transform.Image, _ transform.Background) error {
				return im.Reduce(w, h)
			})
		},
	}
	o.register(cmd, false)
	return cmd
}

func (c *CLI) rotateCommand() *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "rotate SOURCE DEGREES",
		Short: "Rotate an image counter-clockwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("degrees: %w", err)
			}
			return c.runTransform(cmd, args[0], o, func(im *transform.Image, bg transform.Background) error {
				return im.Rotate(deg, bg)
			})
		},
	}
	o.register(cmd, true)
	return cmd
}

func (c *CLI) opacityCommand() *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "opacity SOURCE PERCENT",
		Short: "Scale the alpha channel of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("percent: %w", err)
			}
			return c.runTransform(cmd, args[0], o, func(im *transform.Image, _ transform.Background) error {
				im.Opacity(percent)
				return nil
			})
		},
	}
	o.register(cmd, false)
	return cmd
}

func (c *CLI) watermarkCommand() *cobra.Command {
	var (
		o        outputFlags
		position string
		opacity  int
	)
	cmd := &cobra.Command{
		Use:   "watermark SOURCE MARK",
		Short: "Draw the MARK image over SOURCE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTransform(cmd, args[0], o, func(im *transform.Image, _ transform.Background) error {
				return im.Watermark(args[1], position, opacity)
			})
		},
	}
	cmd.Flags().StringVar(&position, "position", "center", "top-left, top, top-right, left, center, right, bottom-left, bottom or bottom-right")
	cmd.Flags().IntVar(&opacity, "opacity", transform.DefaultWatermarkOpacity, "watermark opacity in percent")
	o.register(cmd, false)
	return cmd
}
