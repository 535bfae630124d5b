package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/file-picker/internal/model"
	"github.com/ytget/file-picker/internal/picker"
	"github.com/ytget/file-picker/internal/platform"
)

// Output formats
const (
	formatText = "text"
	formatYAML = "yaml"
)

// outputOptions controls what is printed for a resolved file
type outputOptions struct {
	format string
	cat    bool
	out    string
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, "result format: text or yaml")
	cmd.Flags().BoolVar(&o.cat, "cat", false, "write the file content to stdout instead of the metadata")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "copy the file content to this path")
	cmd.MarkFlagsMutuallyExclusive("cat", "out")
}

// resultView is the printable form of a PickResult
type resultView struct {
	RequestID  string `yaml:"request_id"`
	Name       string `yaml:"name"`
	URI        string `yaml:"uri"`
	Path       string `yaml:"path"`
	PathSource string `yaml:"path_source"`
	Size       uint64 `yaml:"size,omitempty"`
	SizeHuman  string `yaml:"size_human,omitempty"`
}

func newResultView(result *model.PickResult) resultView {
	view := resultView{
		RequestID:  result.RequestID,
		Name:       result.FileName,
		URI:        result.URI,
		Path:       result.FullPath,
		PathSource: result.PathSource.String(),
	}
	if result.HasFilesystemPath() {
		if info, err := os.Stat(result.FullPath); err == nil && !info.IsDir() {
			view.Size = uint64(info.Size())
			view.SizeHuman = humanize.Bytes(view.Size)
		}
	}
	return view
}

func (o *outputOptions) write(cmd *cobra.Command, result *model.PickResult) error {
	switch {
	case o.cat:
		_, err := copyStream(cmd, result, cmd.OutOrStdout())
		return err
	case o.out != "":
		return o.saveTo(cmd, result)
	}

	view := newResultView(result)
	switch o.format {
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	case formatText, "":
		printResult(cmd.OutOrStdout(), view, result.HasFilesystemPath())
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", o.format)
	}
}

func (o *outputOptions) saveTo(cmd *cobra.Command, result *model.PickResult) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(o.out)); err != nil {
		return err
	}
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.out, err)
	}
	n, err := copyStream(cmd, result, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", o.out, closeErr)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) to %s\n",
		color.GreenString("Saved"), result.FileName, humanize.Bytes(uint64(n)), o.out)
	return nil
}

func copyStream(cmd *cobra.Command, result *model.PickResult, w io.Writer) (int64, error) {
	stream, err := result.OpenReadStream(cmd.Context())
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	n, err := io.Copy(w, stream)
	if err != nil {
		return n, fmt.Errorf("failed to read %s: %w", result.URI, err)
	}
	return n, nil
}

func printResult(w io.Writer, view resultView, onDisk bool) {
	label := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", label("Name:"), view.Name)
	fmt.Fprintf(w, "%s  %s\n", label("URI:"), view.URI)

	source := color.GreenString(view.PathSource)
	if !onDisk {
		source = color.YellowString(view.PathSource)
	}
	fmt.Fprintf(w, "%s %s (%s)\n", label("Path:"), view.Path, source)

	if view.SizeHuman != "" {
		fmt.Fprintf(w, "%s %s\n", label("Size:"), view.SizeHuman)
	}
}

func printCancelled(w io.Writer) {
	fmt.Fprintln(w, color.YellowString("No file picked"))
}

// printRequest shows what a pick would ask the platform for
func printRequest(w io.Writer, req *picker.Request) {
	fmt.Fprintf(w, "Platform: %s\n", req.Platform)
	fmt.Fprintf(w, "Title:    %s\n", req.Title)
	if req.AllowsAnyType() {
		fmt.Fprintf(w, "Types:    %s\n", color.CyanString("any"))
	} else {
		fmt.Fprintf(w, "Types:    %s\n", strings.Join(req.AcceptedTypes, ", "))
	}

	if req.Platform == model.PlatformAndroid {
		args := picker.AndroidIntent(req).AMArgs()
		fmt.Fprintf(w, "Intent:   %s %s\n", platform.AMCommand, strings.Join(args, " "))
	}
}
