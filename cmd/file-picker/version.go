package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ytget/file-picker/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "file-picker %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  platform: %s (%s/%s)\n", model.CurrentPlatform(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
