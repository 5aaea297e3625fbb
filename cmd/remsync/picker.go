package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// picker is a single-select menu: arrows or j/k move, Enter chooses,
// q/esc/ctrl+c cancels.
type picker struct {
	title  string
	items  []string
	cursor int
	choice string
	done   bool
}

func newPicker(title string, items []string) picker {
	return picker{title: title, items: items}
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			p.choice = ""
			p.done = true
			return p, tea.Quit
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case "enter":
			p.choice = p.items[p.cursor]
			p.done = true
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p picker) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s\n\n", p.title))
	for i, item := range p.items {
		cursor := "  "
		if p.cursor == i {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", cursor, item))
	}
	b.WriteString("\n  enter: choose · q: back\n")

	return b.String()
}

// Choice returns the chosen item, or "" if the picker was cancelled.
func (p picker) Choice() string {
	return p.choice
}

// runPicker runs the menu and returns the chosen item, "" on cancel.
func runPicker(title string, items []string) (string, error) {
	model, err := tea.NewProgram(newPicker(title, items)).Run()
	if err != nil {
		return "", err
	}
	return model.(picker).Choice(), nil
}
