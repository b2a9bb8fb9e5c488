package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sahilm/fuzzy"
)

// Picker is a full-screen fuzzy multi-select list built on tview. Typing
// narrows the candidates, TAB toggles the highlighted entry, ENTER confirms
// (falling back to the highlighted entry when nothing was toggled) and
// ESC cancels.
type Picker struct{}

// NewPicker creates a new Picker
func NewPicker() *Picker {
	return &Picker{}
}

// matchCandidates returns the candidate indexes matching the query, best
// matches first. An empty query matches everything in original order.
func matchCandidates(query string, candidates []string) []int {
	if query == "" {
		indexes := make([]int, len(candidates))
		for i := range candidates {
			indexes[i] = i
		}
		return indexes
	}

	matches := fuzzy.Find(query, candidates)
	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		indexes = append(indexes, m.Index)
	}
	return indexes
}

// Select runs the interactive picker over the candidates.
func (p *Picker) Select(candidates []string) ([]string, error) {
	app := tview.NewApplication()

	selected := make(map[int]bool)
	var visible []int

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	itemText := func(candidate int) string {
		if selected[candidate] {
			return "[green]✓[white] " + candidates[candidate]
		}
		return "  " + candidates[candidate]
	}

	refresh := func(query string) {
		visible = matchCandidates(query, candidates)
		list.Clear()
		for _, candidate := range visible {
			list.AddItem(itemText(candidate), "", 0, nil)
		}
	}

	input := tview.NewInputField().
		SetLabel("Select tests (TAB to multi-select): ")
	input.SetChangedFunc(refresh)

	var chosen []string
	cancelled := false

	confirm := func() {
		for i, candidate := range candidates {
			if selected[i] {
				chosen = append(chosen, candidate)
			}
		}
		// Nothing toggled: take the highlighted entry, like fzf does.
		if len(chosen) == 0 {
			if cur := list.GetCurrentItem(); cur >= 0 && cur < len(visible) {
				chosen = append(chosen, candidates[visible[cur]])
			}
		}
		app.Stop()
	}

	input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			if cur := list.GetCurrentItem(); cur >= 0 && cur < len(visible) {
				candidate := visible[cur]
				selected[candidate] = !selected[candidate]
				list.SetItemText(cur, itemText(candidate), "")
				if cur < list.GetItemCount()-1 {
					list.SetCurrentItem(cur + 1)
				}
			}
			return nil
		case tcell.KeyDown, tcell.KeyCtrlJ:
			if cur := list.GetCurrentItem(); cur < list.GetItemCount()-1 {
				list.SetCurrentItem(cur + 1)
			}
			return nil
		case tcell.KeyUp, tcell.KeyCtrlK:
			if cur := list.GetCurrentItem(); cur > 0 {
				list.SetCurrentItem(cur - 1)
			}
			return nil
		case tcell.KeyEnter:
			confirm()
			return nil
		case tcell.KeyEscape, tcell.KeyCtrlC:
			cancelled = true
			app.Stop()
			return nil
		}
		return event
	})

	refresh("")

	header := tview.NewTextView().
		SetText("Press TAB to select multiple tests, ENTER to confirm")

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(input, 1, 0, true).
		AddItem(list, 0, 1, false)

	if err := app.SetRoot(flex, true).SetFocus(input).Run(); err != nil {
		return nil, fmt.Errorf("selection ui failed: %w", err)
	}

	if cancelled {
		return nil, nil
	}
	return chosen, nil
}
