package main

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/file-picker/internal/config"
	"github.com/ytget/file-picker/internal/model"
	"github.com/ytget/file-picker/internal/picker"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	configPath string
	platform   string
	verbose    bool
	noColor    bool
}

func newRootCmd(in io.Reader) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "file-picker",
		Short: "Pick a file with the native dialog and resolve it",
		Long: `file-picker opens the platform's file selection dialog and prints the
display name, URI and filesystem path of the picked file.

Examples:
  # Pick any file
  file-picker pick

  # Pick an image and copy it somewhere
  file-picker pick --images --out /tmp/picked.png

  # Show the Android intent for a PNG pick without running it
  file-picker pick --png --platform android --dry-run`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !opts.verbose {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
			}
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	cmd.SetIn(in)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.platform, "platform", "", "target platform: android, ios, macos, windows, linux")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log picker activity to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newPickCmd(opts),
		newResolveCmd(opts),
		newTypesCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig reads the YAML config named by --config or the default location
func (o *globalOptions) loadConfig() (*config.FileConfig, error) {
	path := o.configPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.LoadFileConfig(path)
	if err != nil {
		return nil, err
	}
	if !cfg.Color {
		color.NoColor = true
	}
	return cfg, nil
}

// targetPlatform resolves --platform, then the config, then the running platform
func (o *globalOptions) targetPlatform(cfg *config.FileConfig) (model.DevicePlatform, error) {
	name := o.platform
	if name == "" {
		name = cfg.Platform
	}
	if name == "" {
		return model.CurrentPlatform(), nil
	}
	p, ok := model.ParsePlatform(name)
	if !ok {
		return model.PlatformUnknown, fmt.Errorf("unknown platform: %s", name)
	}
	return p, nil
}

// newService wires a picker service for the CLI
func newService(backend picker.Backend, p model.DevicePlatform, cfg *config.FileConfig) *picker.Service {
	opts := []picker.Option{
		picker.WithPlatform(p),
		picker.WithContentResolver(picker.DefaultContentResolver()),
	}
	if p == model.PlatformAndroid && cfg.AndroidPackage != "" {
		opts = append(opts, picker.WithPermissions(picker.NewAndroidPermissionChecker(cfg.AndroidPackage)))
	}
	return picker.NewService(backend, opts...)
}
