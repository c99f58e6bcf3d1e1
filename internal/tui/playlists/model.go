// Package playlists содержит модель экрана списка плейлистов для TUI
package playlists

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// PlaylistSelectedMsg отправляется при выборе плейлиста
type PlaylistSelectedMsg struct {
	Name string
}

// playlistItem реализует интерфейс list.Item для плейлиста
type playlistItem struct {
	name  string
	count int
}

func (i playlistItem) FilterValue() string {
	return i.name
}

// playlistItemDelegate реализует отображение элементов списка
type playlistItemDelegate struct{}

func (d playlistItemDelegate) Height() int                             { return 1 }
func (d playlistItemDelegate) Spacing() int                            { return 0 }
func (d playlistItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d playlistItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(playlistItem)
	if !ok {
		return
	}

	// Форматируем строку: название плейлиста и количество треков
	str := fmt.Sprintf("%-40s %d", utils.TruncateString(i.name, 40), i.count)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка плейлистов
type Model struct {
	list     list.Model
	library  *playlist.Library
	quitting bool
}

// NewModel создает новую модель списка плейлистов
func NewModel(library *playlist.Library) *Model {
	// Преобразуем плейлисты в элементы списка
	names := library.Names()
	items := make([]list.Item, len(names))
	for i, name := range names {
		songs, _ := library.Songs(name)
		items[i] = playlistItem{name: name, count: len(songs)}
	}

	// Создаем список
	l := list.New(items, playlistItemDelegate{}, 0, 0)
	l.Title = "Плейлисты"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:    l,
		library: library,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			// Получаем выбранный элемент
			selectedItem := m.list.SelectedItem()
			if selectedItem != nil {
				if item, ok := selectedItem.(playlistItem); ok {
					// Отправляем сообщение о выборе плейлиста
					return m, func() tea.Msg {
						return PlaylistSelectedMsg{Name: item.name}
					}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает интерфейс
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До встречи! 👋")
	}

	if len(m.list.Items()) == 0 {
		return quitTextStyle.Render("Плейлистов пока нет.")
	}

	return m.list.View()
}
