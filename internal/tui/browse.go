// internal/tui/browse.go
// Package tui provides the interactive dataset browser for the analyzer.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ai-twinkle/analyzer/internal/appconfig"
	"github.com/ai-twinkle/analyzer/internal/evalfile"
	"github.com/ai-twinkle/analyzer/internal/report"
)

// viewState represents the current view or screen of the browser.
type viewState int

const (
	// viewDatasetSelector is the state where the user picks a dataset.
	viewDatasetSelector viewState = iota
	// viewChart is the state where one dataset's pages are shown.
	viewChart
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	corpus *evalfile.Corpus

	state       viewState
	datasetList list.Model
	viewport    viewport.Model

	dataset   string
	sortMode  report.SortMode
	normalize bool
	pageSize  int
	pageIndex int
	pages     []report.Page
	view      *report.View

	width, height int
	ready         bool
}

// item represents a selectable dataset in the list.
type item struct {
	title string
	desc  string
}

// Title returns the dataset name.
func (i item) Title() string { return i.title }

// Description returns the record count summary.
func (i item) Description() string { return i.desc }

// FilterValue returns the dataset name, used for filtering.
func (i item) FilterValue() string { return i.title }

// Browse runs the interactive browser over a loaded corpus. It returns when
// the user quits.
func Browse(corpus *evalfile.Corpus, cfg *appconfig.Config) error {
	sortMode, err := report.ParseSortMode(cfg.EffectiveSortMode())
	if err != nil {
		return err
	}
	m := initialModel(corpus, sortMode, cfg.Normalize, cfg.EffectivePageSize())
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func initialModel(corpus *evalfile.Corpus, sortMode report.SortMode, normalize bool, pageSize int) *model {
	datasets := corpus.Datasets()
	items := make([]list.Item, len(datasets))
	for i, dataset := range datasets {
		items[i] = item{
			title: dataset,
			desc:  fmt.Sprintf("%d records", len(corpus.DatasetRecords(dataset))),
		}
	}
	datasetList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	datasetList.Title = "Select a Dataset"

	return &model{
		corpus:      corpus,
		state:       viewDatasetSelector,
		datasetList: datasetList,
		sortMode:    sortMode,
		normalize:   normalize,
		pageSize:    pageSize,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.datasetList.SetSize(msg.Width, msg.Height-1)
		m.viewport = viewport.New(msg.Width, msg.Height-3)
		m.ready = true
		if m.state == viewChart {
			m.refreshContent()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case viewDatasetSelector:
			return m.updateSelector(msg)
		case viewChart:
			return m.updateChart(msg)
		}
	}
	return m, nil
}

func (m *model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is active, keys belong to the filter input.
	if m.datasetList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.datasetList, cmd = m.datasetList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		if selected, ok := m.datasetList.SelectedItem().(item); ok {
			m.dataset = selected.title
			m.pageIndex = 0
			m.state = viewChart
			m.rebuild()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.datasetList, cmd = m.datasetList.Update(msg)
	return m, cmd
}

func (m *model) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = viewDatasetSelector
		return m, nil
	case "left", "h":
		if m.pageIndex > 0 {
			m.pageIndex--
			m.refreshContent()
		}
		return m, nil
	case "right", "l":
		if m.pageIndex < len(m.pages)-1 {
			m.pageIndex++
			m.refreshContent()
		}
		return m, nil
	case "s":
		m.sortMode = nextSortMode(m.sortMode)
		m.rebuild()
		return m, nil
	case "x":
		m.normalize = !m.normalize
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// rebuild recomputes the view after a dataset, sort, or scale change.
func (m *model) rebuild() {
	m.view = report.NewView(m.corpus, m.dataset, m.sortMode, m.normalize)
	m.pages = m.view.Pages(m.pageSize)
	if m.pageIndex >= len(m.pages) {
		m.pageIndex = 0
	}
	m.refreshContent()
}

func (m *model) refreshContent() {
	if !m.ready || m.view == nil || len(m.pages) == 0 {
		return
	}
	page := m.pages[m.pageIndex]
	content := m.view.Chart(page, m.width) + "\n" + m.view.Table(page)
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.state == viewDatasetSelector {
		return m.datasetList.View()
	}

	header := headerStyle.Render(fmt.Sprintf("%s — page %d/%d", m.dataset, m.pageIndex+1, len(m.pages)))
	help := helpStyle.Render(fmt.Sprintf(
		"←/→ page · s sort (%s) · x scale (%s) · esc back · ctrl+c quit",
		m.sortMode, scaleLabel(m.normalize),
	))
	return header + "\n" + m.viewport.View() + "\n" + help
}

func nextSortMode(mode report.SortMode) report.SortMode {
	switch mode {
	case report.SortMeanDesc:
		return report.SortMeanAsc
	case report.SortMeanAsc:
		return report.SortAlpha
	default:
		return report.SortMeanDesc
	}
}

func scaleLabel(normalize bool) string {
	if normalize {
		return "0-100"
	}
	return "0-1"
}
