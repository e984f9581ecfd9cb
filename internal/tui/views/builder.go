package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/submit"
	"github.com/marco-mi/MoonworksBrief/internal/tui/models"
)

// RunBriefBuilder starts the interactive brief builder over the default
// catalog and blocks until the user quits.
func RunBriefBuilder(submitter *submit.Submitter, studio, exportDir string) error {
	session := brief.NewSession(brief.DefaultCatalog())
	model := models.NewWizardModel(session, submitter, studio, exportDir)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("brief builder: %w", err)
	}
	return nil
}
