package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	calkeys "github.com/ionut-t/calkeys/adapter-bubbletea"
	"github.com/ionut-t/calkeys/config"
	"github.com/ionut-t/calkeys/nlcep"
)

type Model struct {
	calkeys calkeys.Model
}

func (m Model) Init() tea.Cmd {
	return m.calkeys.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// leave room for the border
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		msg = tea.WindowSizeMsg{Width: size.Width - 4, Height: size.Height - 2}
	}

	model, cmd := m.calkeys.Update(msg)
	m.calkeys = model.(calkeys.Model)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.calkeys.View())
}

func main() {
	configPath := flag.String("config", "calkeys.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := tea.LogToFile(cfg.LogFile, "calkeys")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	client, err := nlcep.NewClient(cfg.Endpoint, nlcep.WithSession(cfg.SessionCookie))
	if err != nil {
		log.Fatalf("Error creating preview client: %v", err)
	}

	opts := []calkeys.Option{
		calkeys.WithCopyLinks(cfg.CopyLinks),
		calkeys.WithWeekStart(cfg.FirstWeekday()),
		calkeys.WithBasePath(cfg.BasePath),
	}
	if !cfg.Calendar {
		opts = append(opts, calkeys.WithoutCalendar())
	}

	m := Model{calkeys: calkeys.New(client, opts...)}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Printf("Error running Bubble Tea program: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
