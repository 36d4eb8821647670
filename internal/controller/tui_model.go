package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	m "github.com/pine-marten/cppstat/internal/model"
)

// statItem is one file row in the report browser.
type statItem struct {
	path  string
	cells string // preformatted numeric columns
}

// FilterValue makes rows filterable by path.
func (i statItem) FilterValue() string { return i.path }

// statDelegate renders one compact row: numeric cells, then the path.
type statDelegate struct {
	cellWidth int
}

func (d statDelegate) Height() int                             { return 1 }
func (d statDelegate) Spacing() int                            { return 0 }
func (d statDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d statDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(statItem)
	if !ok {
		return
	}

	pathWidth := lm.Width() - d.cellWidth - 2

	var cellStyle, pathStyle lipgloss.Style

	if index == lm.Index() {
		cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		pathStyle = cellStyle
	} else {
		cellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		cellStyle.Render(row.cells),
		pathStyle.Render(truncateToWidth(row.path, pathWidth)),
	)
}

// browseModel is the Bubble Tea model shared by both report browsers.
type browseModel struct {
	width    int
	height   int
	title    string
	header   string
	summary  string
	fileList list.Model
	items    int
}

func newBrowseModel(title, header, summary string, delegate statDelegate, items []list.Item) browseModel {
	fileList := list.New(items, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return browseModel{
		title:    title,
		header:   header,
		summary:  summary,
		fileList: fileList,
		items:    len(items),
	}
}

func newSizeBrowseModel(report m.SizeReport) browseModel {
	items := make([]list.Item, 0, len(report.Entries))
	for _, entry := range report.Entries {
		items = append(items, statItem{path: entry.Path, cells: fmt.Sprintf("%8d", entry.Lines)})
	}

	summary := fmt.Sprintf("Total lines (excluding %s/): %s",
		report.ExcludedDir, humanize.Comma(int64(report.Total)))

	header := fmt.Sprintf("%8s  %s", "Lines", "File")

	return newBrowseModel("cppstat · tree size", header, summary, statDelegate{cellWidth: 8}, items)
}

func newTestBrowseModel(report m.TestReport) browseModel {
	paths := report.SortedFiles()

	items := make([]list.Item, 0, len(paths))
	for _, path := range paths {
		stats := report.Files[path]
		items = append(items, statItem{
			path:  path,
			cells: fmt.Sprintf("%6d %8d %6d", stats.Tests, stats.Assertions, stats.LOC),
		})
	}

	summary := fmt.Sprintf("Tests: %s   Asserts: %s   LOC: %s",
		humanize.Comma(int64(report.Total.Tests)),
		humanize.Comma(int64(report.Total.Assertions)),
		humanize.Comma(int64(report.Total.LOC)))

	header := fmt.Sprintf("%6s %8s %6s  %s", "Tests", "Asserts", "LOC", "File")

	return newBrowseModel("cppstat · test stats", header, summary, statDelegate{cellWidth: 22}, items)
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height

		return bm, nil

	case tea.KeyMsg:
		// While the filter input is focused only ctrl+c quits, so typing
		// a q into the filter still works.
		if msg.String() == "ctrl+c" ||
			(msg.String() == "q" && bm.fileList.FilterState() != list.Filtering) {
			return bm, tea.Quit
		}

		var cmd tea.Cmd
		bm.fileList, cmd = bm.fileList.Update(msg)

		return bm, cmd
	}

	return bm, nil
}

func (bm browseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(bm.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(bm.title),
		summaryStyle.Render(bm.summary),
		bm.renderTable(),
		footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"),
	)
}

func (bm browseModel) renderTable() string {
	width := bm.width
	if width == 0 {
		// No terminal size known, as in the one-shot static rendering.
		width = 86
	}

	listHeight := bm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	if bm.items > 0 && bm.items < listHeight {
		listHeight = bm.items
	}

	listWidth := width - 6

	bm.fileList.SetHeight(listHeight)
	bm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(bm.header),
		bm.fileList.View(),
	))
}

// itemsPerPage calculates how many rows fit on screen.
func (bm browseModel) itemsPerPage() int {
	if bm.height == 0 {
		return 10
	}

	available := bm.height - 9
	if available < 1 {
		return 1
	}

	return available
}

// needsPagination reports whether the list is too large to show at once.
func (bm browseModel) needsPagination() bool {
	if bm.items == 0 {
		return false
	}

	return bm.height > 0 && bm.items > bm.itemsPerPage()
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	budget := width - lipgloss.Width(ellipsis)
	if budget <= 0 {
		return ellipsis
	}

	used := 0
	kept := make([]rune, 0, len(text))

	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > budget {
			break
		}

		kept = append(kept, r)
		used += w
	}

	return string(kept) + ellipsis
}
