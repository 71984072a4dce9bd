package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tcgen/internal/config"
	"tcgen/internal/domain"
)

// CatalogBrowser lets the user walk through plugin suites in a TUI
type CatalogBrowser struct {
	config *config.Config
	out    io.Writer
}

// NewCatalogBrowser creates a new CatalogBrowser; out receives the message shown when there is nothing to browse
func NewCatalogBrowser(cfg *config.Config, out io.Writer) *CatalogBrowser {
	return &CatalogBrowser{config: cfg, out: out}
}

// View shows plugins on the left and the selected plugin's test cases on the right
func (b *CatalogBrowser) View(cat *domain.Catalog) error {
	if len(cat.Suites) == 0 {
		color.New(color.FgYellow).Fprintf(b.out, "No plugins found (%d test case(s))\n", len(cat.Cases))
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, s := range cat.Suites {
		list.AddItem(formatSuiteItem(s, i+1), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test Catalog (%d cases, %d plugins) | ↑↓ navigate, → view tests, ← back, q or Ctrl+C exit ", len(cat.Cases), len(cat.Suites)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(cat.Suites) {
			s := cat.Suites[index]
			statsView.SetText(formatSuiteStats(s, len(cat.Cases)))
			detailsView.SetText(formatSuiteDetails(cat, s))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func formatSuiteItem(s domain.Suite, number int) string {
	return fmt.Sprintf("[yellow]%d.[white] %s [gray](%d)[white]", number, s.DisplayName(), s.Count())
}

// formatSuiteStats formats the header above the suite's test list
func formatSuiteStats(s domain.Suite, total int) string {
	return fmt.Sprintf("[cyan]plugin:[white] [yellow]%s[white] (%s_TESTS)  [cyan]tests:[white] %d/%d\n",
		s.DisplayName(), s.Plugin, s.Count(), total)
}

// formatSuiteDetails lists the suite's test cases using tview color tags
func formatSuiteDetails(cat *domain.Catalog, s domain.Suite) string {
	if s.Count() == 0 {
		return "[gray]No test cases[white]"
	}

	var builder strings.Builder
	for _, id := range s.Tests {
		tc := cat.Cases[id]
		fmt.Fprintf(&builder, "[yellow]%3d[white] %s\n", id, tc.Function)
		if tc.Description != "" {
			fmt.Fprintf(&builder, "    %s\n", tview.Escape(tc.Description))
		}
		tags := tview.Escape("[" + strings.Join(tc.Plugins, " | ") + "]")
		fmt.Fprintf(&builder, "    [gray]%s  %s[white]\n", tview.Escape(tc.FilePath), tags)
	}
	return builder.String()
}
