package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riordanpawley/marquee/internal/domain"
)

func (a *App) eventsCmd() *cobra.Command {
	var (
		query    string
		category string
		statuses []string
		sortBy   string
		desc     bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events",
		Long: `List the event catalog, optionally filtered and sorted.

The query matches name, client and venue, ignoring case.`,
		Example: `  marquee events
  marquee events --query gala
  marquee events --category wedding --sort guests --desc
  marquee events --status planning,confirmed
  marquee events --format markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := domain.NewEventFilter()
			filter.SearchQuery = query
			if category != "" {
				c, err := parseCategory(category)
				if err != nil {
					return err
				}
				filter.ToggleCategory(c)
			}
			for _, name := range statuses {
				st, err := parseStatus(name)
				if err != nil {
					return err
				}
				if !filter.Status[st] {
					filter.ToggleStatus(st)
				}
			}

			field, err := parseSortField(sortBy)
			if err != nil {
				return err
			}
			order := domain.SortAsc
			if desc {
				order = domain.SortDesc
			}
			s := domain.Sort{Field: field, Order: order}

			events := s.Apply(filter.Apply(a.events))
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No events match.")
				return nil
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Name", "Date", "Category", "Status", "Guests", "Budget"})
			for _, e := range events {
				t.AppendRow(table.Row{e.ID, e.Name, e.Date.Format("2006-01-02"), e.Category, e.Status, e.Guests, e.Budget})
			}
			t.SetColumnConfigs([]table.ColumnConfig{
				{Name: "Guests", Align: text.AlignRight},
				{Name: "Budget", Align: text.AlignRight, Transformer: text.NewNumberTransformer("$%d")},
			})
			return render(t, format)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive search")
	cmd.Flags().StringVar(&category, "category", "", "Only events in this category ("+categoryNames()+")")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Only events with these statuses ("+statusNames()+")")
	cmd.Flags().StringVar(&sortBy, "sort", string(domain.SortByDate), "Sort by date, name or guests")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, markdown or csv")

	return cmd
}

func (a *App) vendorsCmd() *cobra.Command {
	var (
		query  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List vendors",
		Example: `  marquee vendors
  marquee vendors --query portland`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vendors := domain.Filter(a.vendors, nil, query, domain.Vendor.SearchFields)
			if len(vendors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No vendors match.")
				return nil
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Name", "Service", "City", "Rating"})
			for _, v := range vendors {
				t.AppendRow(table.Row{v.ID, v.Name, v.Service, v.City, strconv.FormatFloat(v.Rating, 'f', 1, 64)})
			}
			return render(t, format)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive search")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, markdown or csv")

	return cmd
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if width := termWidth(w); width > 0 {
		t.SetAllowedRowLength(width)
	}
	return t
}

// termWidth returns the width of w when it is a terminal, otherwise 0
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func render(t table.Writer, format string) error {
	switch format {
	case "table", "":
		t.Render()
	case "md", "markdown":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		return fmt.Errorf("unknown format %q (want table, markdown or csv)", format)
	}
	return nil
}

func parseCategory(name string) (domain.Category, error) {
	for _, c := range domain.Categories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want %s)", name, categoryNames())
}

func categoryNames() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func parseStatus(name string) (domain.EventStatus, error) {
	for _, s := range domain.EventStatuses {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want %s)", name, statusNames())
}

func statusNames() string {
	names := make([]string, len(domain.EventStatuses))
	for i, s := range domain.EventStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func parseSortField(name string) (domain.SortField, error) {
	switch f := domain.SortField(strings.ToLower(name)); f {
	case domain.SortByDate, domain.SortByName, domain.SortByGuests:
		return f, nil
	}
	return "", fmt.Errorf("unknown sort field %q (want date, name or guests)", name)
}
