package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-datemath/instant"
)

type instantResult struct {
	Result    string `json:"result" yaml:"result"`
	UnixMilli int64  `json:"unix_milli" yaml:"unix_milli"`
}

func writeInstant(cmd *cobra.Command, format string, i instant.Instant) error {
	r := instantResult{Result: i.String(), UnixMilli: i.UnixMilli()}
	return writeResult(cmd, format, r, r.Result)
}

// writeResult renders a command result. Text output prints the given line;
// json and yaml encode the full value.
func writeResult(cmd *cobra.Command, format string, v any, text string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(out, text)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
