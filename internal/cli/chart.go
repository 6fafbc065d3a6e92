package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/io"
	"github.com/matzehuels/blueprint/pkg/pipeline"
)

const defaultChartOutput = "hid_usb_priority.png"

// chartCommand creates the command that renders the priority bar chart.
func (c *CLI) chartCommand() *cobra.Command {
	f := renderFlags{output: defaultChartOutput}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the HID USB file priority bar chart",
		Example: `  blueprint chart
  blueprint chart -f svg -o priority.svg
  blueprint chart --input priorities.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := chart.PriorityChart()
			if f.input != "" {
				var err error
				if bc, err = io.ReadChart(f.input); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("loaded chart", "path", f.input, "bars", len(bc.Bars))
			}

			opts := c.renderOptions(cmd, &f)
			render := func(ctx context.Context, r *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
				return r.RenderChart(ctx, bc, opts)
			}
			return c.runRender(cmd.Context(), "chart", &f, opts, render,
				fmt.Sprintf("%d bars", len(bc.Bars)),
				fmt.Sprintf("%d total", bc.Total()))
		},
	}

	addRenderFlags(cmd, &f, false)
	return cmd
}
