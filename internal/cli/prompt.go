package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "Y")
	Accepted bool
	// Cancelled is true if reading the answer failed
	Cancelled bool
}

// ConfirmOverwrite asks whether an existing configuration file may be
// replaced. It returns immediately with Accepted=false in non-interactive
// environments.
//
// The prompt defaults to "No" when the user presses Enter without input.
// "y" and "yes" in any case accept; anything else declines.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, path string) PromptResult {
	if !isInteractive() {
		return PromptResult{Accepted: false}
	}

	fmt.Fprintf(writer, "? Configuration file %s already exists. Overwrite it? [y/N] ", path)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error (Ctrl+D) declines.
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
