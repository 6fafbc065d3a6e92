package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/catalog"
	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/io"
)

// builtinTables maps export targets to their built-in data.
var builtinTables = map[string]func() any{
	"diagram": func() any { return diagram.Architecture() },
	"chart":   func() any { return chart.PriorityChart() },
	"catalog": func() any { return catalog.MCPPromptsRS() },
}

// exportCommand creates the command that writes a built-in data table to a
// file that --input can read back.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export [diagram|chart|catalog]",
		Short: "Write a built-in data table as TOML, YAML or JSON",
		Long: `Write a built-in data table so it can be edited and passed back with --input.

With --output the format follows the file extension. Without it the table is
printed to stdout in --format.`,
		Example: `  blueprint export diagram -o architecture.toml
  blueprint export catalog --format yaml > files.yaml`,
		ValidArgs: []string{"diagram", "chart", "catalog"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := builtinTables[args[0]]()
			if output != "" {
				if err := io.Export(output, v); err != nil {
					return err
				}
				printSuccess("Exported %s", args[0])
				printFile(output)
				printNextStep("Use it", appName+" "+args[0]+" --input "+output)
				return nil
			}

			f, err := io.ParseFormat(format)
			if err != nil {
				return err
			}
			return io.Encode(cmd.OutOrStdout(), f, v)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.toml, .yaml, .yml, .json)")
	cmd.Flags().StringVarP(&format, "format", "f", string(io.FormatTOML), "stdout format: toml (default), yaml, json")
	completeDataFormats(cmd)

	return cmd
}
