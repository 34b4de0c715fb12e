package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/router"
	"github.com/abhisek/daycheck/internal/screen"
	"github.com/abhisek/daycheck/internal/screens/question"
	"github.com/abhisek/daycheck/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the question screen.
func newAppModel(set *questionset.Set, logger *zap.Logger) AppModel {
	return AppModel{
		router: router.New(question.New(set, logger)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	progress := 0
	var bindings []key.Binding
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.ProgressProvider); ok {
			progress = p.Progress()
		}
		if k, ok := active.(screen.KeyMapProvider); ok {
			bindings = k.KeyBindings()
		}
	}

	header := layout.RenderHeader(title, progress, m.width)
	footer := layout.RenderFooter(bindings, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program over set.
func Run(set *questionset.Set, logger *zap.Logger) error {
	p := tea.NewProgram(newAppModel(set, logger))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
