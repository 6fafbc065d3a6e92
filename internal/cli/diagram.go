package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/io"
	"github.com/matzehuels/blueprint/pkg/pipeline"
)

const defaultDiagramOutput = "mcp_architecture.png"

// diagramCommand creates the command that renders the architecture diagram.
func (c *CLI) diagramCommand() *cobra.Command {
	f := renderFlags{output: defaultDiagramOutput}

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render the mcp-prompts-rs architecture diagram",
		Long: `Render the architecture diagram: components grouped into colored categories
on a coordinate plane, with connection lines, arrow markers and a legend.

With --type graph the components are laid out by Graphviz instead of by
their coordinates, which also enables the dot format.`,
		Example: `  blueprint diagram
  blueprint diagram -f svg,pdf -o docs/architecture
  blueprint diagram --type graph -f dot,svg
  blueprint diagram --input architecture.toml --style handdrawn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := diagram.Architecture()
			if f.input != "" {
				var err error
				if d, err = io.ReadDiagram(f.input); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("loaded diagram", "path", f.input, "components", len(d.Components()))
			}

			opts := c.renderOptions(cmd, &f)
			render := func(ctx context.Context, r *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
				return r.RenderDiagram(ctx, d, opts)
			}
			return c.runRender(cmd.Context(), "diagram", &f, opts, render,
				fmt.Sprintf("%d components", len(d.Components())),
				fmt.Sprintf("%d connections", len(d.Connections)),
				fmt.Sprintf("%d arrows", len(d.Arrows)))
		},
	}

	addRenderFlags(cmd, &f, true)
	return cmd
}
