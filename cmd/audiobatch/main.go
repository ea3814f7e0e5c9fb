// Command audiobatch merges a folder of MP3 files into one MP3, or converts
// MP3 files into still-image MP4 videos, by driving ffmpeg.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	a := newApp(os.Stdin)
	defer a.close()

	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		// Failures already logged by a command only set the exit code.
		if !errors.Is(err, errReported) && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "audiobatch: %v\n", err)
		}
		return 1
	}
	return 0
}
