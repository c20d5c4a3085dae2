package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gita/pkg/app/screens"
	"github.com/kerbaras/gita/pkg/integrations"
	"github.com/kerbaras/gita/pkg/services"
)

type App struct {
	controller *services.Controller
	sharer     integrations.Sharer
	exportDir  string
}

func NewApp(controller *services.Controller, sharer integrations.Sharer, exportDir string) *App {
	return &App{
		controller: controller,
		sharer:     sharer,
		exportDir:  exportDir,
	}
}

func (a *App) Run() error {
	deps := screens.DepsFromController(a.controller, a.sharer, a.exportDir)
	model := screens.NewRootScreen(deps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
