// Command file-picker picks a file with the platform's native dialog and
// prints what the picker resolved for it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ytget/file-picker/internal/picker"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		if !errors.Is(err, picker.ErrCancelled) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}
