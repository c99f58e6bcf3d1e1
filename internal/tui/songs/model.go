// Package songs содержит модель экрана треков выбранного плейлиста для TUI
package songs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Margin(1, 0, 1, 2)

	songStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(4)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Margin(1, 0, 1, 2)
)

// GoBackMsg отправляется для возврата к списку плейлистов
type GoBackMsg struct{}

// Model представляет модель экрана треков плейлиста
type Model struct {
	playlistName string
	songs        []string
}

// NewModel создает новую модель экрана треков
func NewModel(playlistName string, songs []string) *Model {
	return &Model{
		playlistName: playlistName,
		songs:        songs,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc", "q":
			// Возвращаемся к списку плейлистов
			return m, func() tea.Msg {
				return GoBackMsg{}
			}
		}
	}

	return m, nil
}

// View отображает интерфейс
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📁  " + m.playlistName))
	b.WriteString("\n")

	if len(m.songs) == 0 {
		b.WriteString(emptyStyle.Render("(нет треков)"))
		b.WriteString("\n")
	} else {
		for i, song := range m.songs {
			b.WriteString(songStyle.Render(fmt.Sprintf("%d. %s", i+1, song)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("esc - назад • ctrl+c - выход"))

	return b.String()
}
