package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/file-picker/internal/model"
	"github.com/ytget/file-picker/internal/picker"
)

func newTypesCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the built-in and configured file types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}

			platforms := model.AllPlatforms()
			if global.platform != "" {
				p, err := global.targetPlatform(cfg)
				if err != nil {
					return err
				}
				platforms = []model.DevicePlatform{p}
			}

			w := cmd.OutOrStdout()
			printFileType(w, "images", model.ImageFileType(), platforms)
			printFileType(w, "png", model.PngFileType(), platforms)

			names := cfg.FileTypeNames()
			sort.Strings(names)
			for _, name := range names {
				ft, _ := cfg.NamedFileType(name)
				printFileType(w, name, ft, platforms)
			}
			return nil
		},
	}
}

func printFileType(w io.Writer, name string, ft *model.FileType, platforms []model.DevicePlatform) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint(name))
	for _, p := range platforms {
		values := ft.Value(p)
		if len(values) == 0 {
			fmt.Fprintf(w, "  %-8s %s\n", p, color.CyanString("any"))
			continue
		}
		fmt.Fprintf(w, "  %-8s %s", p, strings.Join(values, ", "))
		if exts := picker.Extensions(values); len(exts) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(exts, " "))
		}
		fmt.Fprintln(w)
	}
}
