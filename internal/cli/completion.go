package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/catalog"
	"github.com/matzehuels/blueprint/pkg/io"
	"github.com/matzehuels/blueprint/pkg/pipeline"
	"github.com/matzehuels/blueprint/pkg/render/styles"
)

// completionCommand generates shell completion scripts. Besides command and
// flag names, the scripts complete the values of --format, --style, --type
// and --kind.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for blueprint.

  $ source <(blueprint completion bash)
  $ blueprint completion zsh > "${fpath[1]}/_blueprint"
  $ blueprint completion fish | source
  PS> blueprint completion powershell | Out-String | Invoke-Expression

Completions include flag values, e.g. "blueprint diagram --style <TAB>".`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// renderFormats lists the output formats offered for a render command.
func renderFormats(withGraph bool) []string {
	formats := []string{pipeline.FormatPNG, pipeline.FormatSVG, pipeline.FormatPDF, pipeline.FormatJSON}
	if withGraph {
		formats = append(formats, pipeline.FormatDOT)
	}
	return formats
}

// completeRenderFlags registers value completion for the shared render
// flags.
func completeRenderFlags(cmd *cobra.Command, withType bool) {
	cmd.RegisterFlagCompletionFunc("format", completeFormatList(renderFormats(withType)))
	cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(
		[]string{styles.NameSimple, styles.NameHanddrawn}, cobra.ShellCompDirectiveNoFileComp))
	if withType {
		cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(
			[]string{pipeline.VizTypePlot, pipeline.VizTypeGraph}, cobra.ShellCompDirectiveNoFileComp))
	}
}

// completeFormatList completes one entry of a comma-separated format list,
// skipping formats already given.
func completeFormatList(formats []string) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		prefix, given := "", []string(nil)
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
			given = strings.Split(toComplete[:i], ",")
		}
		var out []cobra.Completion
		for _, f := range formats {
			if !slices.Contains(given, f) {
				out = append(out, prefix+f)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}

// completeCatalogFlags registers value completion for the catalog flags.
func completeCatalogFlags(cmd *cobra.Command) {
	kinds := make([]string, len(catalog.Kinds))
	for i, k := range catalog.Kinds {
		kinds[i] = string(k)
	}
	cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions(kinds, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{catalogText, catalogJSON, catalogTable}, cobra.ShellCompDirectiveNoFileComp))
}

// completeDataFormats registers --format completion with the data file
// encodings.
func completeDataFormats(cmd *cobra.Command) {
	formats := make([]string, len(io.Formats))
	for i, f := range io.Formats {
		formats[i] = string(f)
	}
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))
}
