package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type printer struct {
	out    io.Writer
	format string
}

func newPrinter(cmd *cobra.Command) (*printer, error) {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, fmt.Errorf("getting output flag value: %w", err)
	}
	switch format {
	case formatYAML, formatJSON:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &printer{out: cmd.OutOrStdout(), format: format}, nil
}

func (p *printer) Print(v interface{}) error {
	if p.format == formatJSON {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
