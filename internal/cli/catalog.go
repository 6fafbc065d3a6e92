package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/catalog"
	"github.com/matzehuels/blueprint/pkg/errors"
	bpio "github.com/matzehuels/blueprint/pkg/io"
)

// Catalog output views.
const (
	catalogText  = "text"
	catalogJSON  = "json"
	catalogTable = "table"
)

// catalogOpts holds the command-line flags for the catalog command.
type catalogOpts struct {
	format      string // text (default), json or table
	kind        string // optional kind filter
	input       string // optional data file replacing the built-in table
	interactive bool   // browse in a terminal UI instead of printing
}

// catalogReport is the JSON view of a partitioned catalog.
type catalogReport struct {
	Name    string           `json:"name,omitempty"`
	Total   int              `json:"total"`
	Buckets []catalog.Bucket `json:"buckets"`
	Summary catalog.Summary  `json:"summary"`
}

// catalogCommand creates the command that lists the planned files by priority.
func (c *CLI) catalogCommand() *cobra.Command {
	opts := catalogOpts{format: catalogText}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the planned files grouped by priority",
		Long: `List every planned file grouped into CRITICAL, HIGH, MEDIUM and LOW buckets.

Entries keep their declaration order inside each bucket. Entries with an
unrecognized priority are listed under LOW.`,
		Example: `  blueprint catalog
  blueprint catalog --kind source
  blueprint catalog --format table
  blueprint catalog --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(opts)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded catalog", "entries", cat.Len(), "kind", opts.kind)

			if opts.interactive {
				p := tea.NewProgram(NewCatalogModel(cat), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
				_, err := p.Run()
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), cat, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output view: text (default), json, table")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "only list entries of this kind (config, source, ci, script, data, test, docs)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "data file (.toml, .yaml, .json) replacing the built-in table")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "browse the catalog interactively")
	completeCatalogFlags(cmd)

	return cmd
}

// loadCatalog returns the built-in or file catalog, filtered by kind.
func loadCatalog(opts catalogOpts) (*catalog.Catalog, error) {
	cat := catalog.MCPPromptsRS()
	if opts.input != "" {
		var err error
		if cat, err = bpio.ReadCatalog(opts.input); err != nil {
			return nil, err
		}
	}
	if opts.kind != "" {
		k, err := catalog.ParseKind(opts.kind)
		if err != nil {
			return nil, err
		}
		cat = cat.FilterKind(k)
	}
	return cat, nil
}

// writeCatalog writes cat to w in the given view.
func writeCatalog(w io.Writer, cat *catalog.Catalog, view string) error {
	switch view {
	case catalogText:
		return catalog.WriteReport(w, cat)
	case catalogJSON:
		return bpio.Encode(w, bpio.FormatJSON, catalogReport{
			Name:    cat.Name,
			Total:   cat.Len(),
			Buckets: cat.Partition(),
			Summary: cat.Summarize(),
		})
	case catalogTable:
		_, err := fmt.Fprintln(w, catalogTableView(cat))
		return err
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid catalog format: %q (must be one of: text, json, table)", view)
	}
}

// catalogTableView renders the partitioned catalog as a bordered table.
func catalogTableView(cat *catalog.Catalog) string {
	var rows [][]string
	for _, b := range cat.Partition() {
		marker := catalog.DefaultLabels.Headings[b.Priority].Marker
		for _, e := range b.Entries {
			rows = append(rows, []string{marker + " " + string(b.Priority), e.Path, string(e.Kind), e.Description})
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Priority", "Path", "Kind", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 2 {
				return cell.Foreground(colorGray)
			}
			return cell
		})

	return t.Render() + "\n" + fmt.Sprintf(catalog.DefaultLabels.TotalFormat, cat.Len())
}
