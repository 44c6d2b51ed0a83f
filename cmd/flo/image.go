package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/flo/encode"
	"github.com/gogpu/gg/recording"
	"github.com/spf13/cobra"
)

func addImageFlags(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringP("output", "o", defaultOut, "output file; the extension selects the format")
	cmd.Flags().Int("width", 0, "image width in pixels")
	cmd.Flags().Int("height", 0, "image height in pixels")
	cmd.Flags().Bool("trace", false, "print the drawing commands instead of writing an image")
}

func applySize(cmd *cobra.Command, width, height *int) {
	if cmd.Flags().Changed("width") {
		*width, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("height") {
		*height, _ = cmd.Flags().GetInt("height")
	}
}

// outputFormat prefers the file extension and falls back to the configured format.
func outputFormat(path string) (encode.Format, error) {
	if filepath.Ext(path) != "" {
		return encode.FormatFromPath(path)
	}
	return cfg.Format()
}

func writeFile(w io.Writer, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Wrote %s (%d bytes)\n", path, len(data))
	return err
}

func printCommands(w io.Writer, rec *recording.Recording) error {
	for i, c := range rec.Commands() {
		if _, err := fmt.Fprintf(w, "%3d  %s\n", i, c.Type()); err != nil {
			return err
		}
	}
	return nil
}
