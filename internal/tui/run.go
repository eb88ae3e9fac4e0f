package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run mounts the view, runs the terminal program until the user
// quits or the context is canceled, and then unmounts the view.
func Run(ctx context.Context, view View, mounter Mounter,
	hostAddress string, options ...tea.ProgramOption) (err error) {
	view.CaptureHostAddress(hostAddress)

	_, err = mounter.Start(ctx)
	if err != nil {
		return fmt.Errorf("mounting view: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	model := NewModel(ctx, view, hostAddress)
	options = append([]tea.ProgramOption{tea.WithContext(ctx)}, options...)
	program := tea.NewProgram(model, options...)
	_, runErr := program.Run()
	cancel()

	err = mounter.Stop()
	if err != nil {
		return fmt.Errorf("unmounting view: %w", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("running terminal program: %w", runErr)
	}
	return nil
}
