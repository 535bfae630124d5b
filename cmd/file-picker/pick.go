package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/file-picker/internal/config"
	"github.com/ytget/file-picker/internal/model"
	"github.com/ytget/file-picker/internal/picker"
)

type pickOptions struct {
	backend  string
	title    string
	images   bool
	png      bool
	typeName string
	accept   []string
	dryRun   bool
	output   outputOptions
}

func newPickCmd(global *globalOptions) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the file picker and print the picked file",
		Long: `Open the platform's file picker and print the picked file.

Exits with status 1 and prints nothing on stdout when the dialog is dismissed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "picker backend: "+strings.Join(picker.BackendNames(), ", "))
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "dialog title (default \""+model.DefaultPickerTitle+"\")")
	cmd.Flags().BoolVar(&opts.images, "images", false, "accept images only")
	cmd.Flags().BoolVar(&opts.png, "png", false, "accept PNG files only")
	cmd.Flags().StringVar(&opts.typeName, "type", "", "accept a file type defined in the config file")
	cmd.Flags().StringSliceVar(&opts.accept, "accept", nil, "accepted MIME types, UTIs or extensions for the target platform")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the picker request instead of opening the dialog")
	cmd.MarkFlagsMutuallyExclusive("images", "png", "type", "accept")
	opts.output.register(cmd)

	return cmd
}

func runPick(cmd *cobra.Command, global *globalOptions, opts *pickOptions) error {
	cfg, err := global.loadConfig()
	if err != nil {
		return err
	}
	p, err := global.targetPlatform(cfg)
	if err != nil {
		return err
	}
	options, err := opts.pickOptions(cfg, p)
	if err != nil {
		return err
	}

	if opts.dryRun {
		printRequest(cmd.OutOrStdout(), picker.NewRequest("dry-run", options, p))
		return nil
	}

	name := opts.backend
	if name == "" {
		name = cfg.Backend
	}
	// Prompts go to stderr so stdout carries only the result
	backend, err := picker.NewBackend(name, p, cfg.StartDirectory, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	svc := newService(backend, p, cfg)
	result, err := svc.PickFile(cmd.Context(), options)
	if err != nil {
		return err
	}
	if result == nil {
		printCancelled(cmd.ErrOrStderr())
		return picker.ErrCancelled
	}

	return opts.output.write(cmd, result)
}

// pickOptions builds the picker options from flags and config
func (o *pickOptions) pickOptions(cfg *config.FileConfig, p model.DevicePlatform) (*model.PickOptions, error) {
	options := model.DefaultPickOptions()
	options.Title = o.title
	if options.Title == "" {
		options.Title = cfg.Title
	}

	switch {
	case o.images:
		options.FileTypes = model.ImageFileType()
	case o.png:
		options.FileTypes = model.PngFileType()
	case o.typeName != "":
		ft, ok := cfg.NamedFileType(o.typeName)
		if !ok {
			return nil, fmt.Errorf("file type %q is not defined in the config", o.typeName)
		}
		options.FileTypes = ft
	case len(o.accept) > 0:
		options.FileTypes = model.NewFileType(map[model.DevicePlatform][]string{p: o.accept})
	}

	return options, nil
}
