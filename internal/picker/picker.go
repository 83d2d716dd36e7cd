// Package picker presents interactive selection lists in the terminal.
// Dismissing a picker is an absent result, never an error; callers decide
// whether an absent selection aborts their flow.
package picker

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal renders pickers as a full-screen-free inline list: arrow keys or
// j/k move, enter confirms, esc cancels, and space toggles entries in
// multi-select mode.
type Terminal struct{}

// NewTerminal creates the terminal picker.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Pick presents a single-select list and returns the chosen item. The
// second return is false when the user dismissed the picker.
func (t *Terminal) Pick(ctx context.Context, items []string, placeholder string) (string, bool, error) {
	if len(items) == 0 {
		return "", false, nil
	}
	final, err := runModel(ctx, newModel(items, placeholder, false))
	if err != nil {
		return "", false, err
	}
	if final.cancelled {
		return "", false, nil
	}
	return items[final.cursor], true, nil
}

// PickMany presents a multi-select list and returns the chosen items in
// list order. The second return is false when the user dismissed the
// picker; confirming with nothing toggled returns an empty, non-dismissed
// selection.
func (t *Terminal) PickMany(ctx context.Context, items []string, placeholder string) ([]string, bool, error) {
	if len(items) == 0 {
		return nil, true, nil
	}
	final, err := runModel(ctx, newModel(items, placeholder, true))
	if err != nil {
		return nil, false, err
	}
	if final.cancelled {
		return nil, false, nil
	}
	var selected []string
	for i, item := range items {
		if _, ok := final.chosen[i]; ok {
			selected = append(selected, item)
		}
	}
	return selected, true, nil
}

func runModel(ctx context.Context, m model) (model, error) {
	program := tea.NewProgram(m, tea.WithContext(ctx))
	out, err := program.Run()
	if err != nil {
		return model{}, fmt.Errorf("running selection prompt: %w", err)
	}
	final, ok := out.(model)
	if !ok {
		return model{}, fmt.Errorf("selection prompt returned unexpected model %T", out)
	}
	return final, nil
}
