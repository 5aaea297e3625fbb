// Package ui separates console prompting from the workflows that need
// answers, so orchestration logic runs in tests without a terminal.
package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled reports that the user backed out of a prompt.
var ErrCancelled = errors.New("cancelled")

// Prompter answers the questions workflows ask.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
	// Input asks for a line of text; validate, when non-nil, keeps the user
	// on the prompt until the answer passes.
	Input(title, description string, validate func(string) error) (string, error)
	// Select asks the user to pick one of options.
	Select(title string, options []string) (string, error)
}

// HuhPrompter implements Prompter with charmbracelet/huh forms.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&ok),
	)).Run()
	if err != nil {
		return false, cancelOr(err)
	}
	return ok, nil
}

func (HuhPrompter) Input(title, description string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().Title(title).Description(description).Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", cancelOr(err)
	}
	return value, nil
}

func (HuhPrompter) Select(title string, options []string) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	var choice string
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(&choice),
	)).Run()
	if err != nil {
		return "", cancelOr(err)
	}
	return choice, nil
}

func cancelOr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
