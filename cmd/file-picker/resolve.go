package main

import (
	"github.com/spf13/cobra"
)

func newResolveCmd(global *globalOptions) *cobra.Command {
	var output outputOptions

	cmd := &cobra.Command{
		Use:   "resolve REFERENCE",
		Short: "Resolve a file path or URI without opening a picker",
		Long: `Resolve a reference the way a picked file is resolved: display name,
filesystem path and a readable stream.

Examples:
  file-picker resolve ~/Pictures/cat.png
  file-picker resolve content://media/external/images/media/42 --platform android --cat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			p, err := global.targetPlatform(cfg)
			if err != nil {
				return err
			}
			svc := newService(nil, p, cfg)
			return output.write(cmd, svc.Resolve(cmd.Context(), args[0]))
		},
	}
	output.register(cmd)

	return cmd
}
