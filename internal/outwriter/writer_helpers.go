package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/winnowlabs/winnow/internal/contract"
)

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(cfg *contract.Config, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		prefix := ""
		if cfg.UseEmojis {
			prefix = "💾 "
		}
		fmt.Fprintf(os.Stderr, "%s%s to %s\n", prefix, successMsg, cfg.OutputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
