// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/tui/playlists"
	"github.com/hazadus/go-playlister/internal/tui/songs"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// PlaylistsScreen - экран списка плейлистов
	PlaylistsScreen ScreenType = iota
	// SongsScreen - экран треков выбранного плейлиста
	SongsScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	library        *playlist.Library
	currentScreen  ScreenType
	playlistsModel *playlists.Model
	songsModel     *songs.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(library *playlist.Library) *MainModel {
	return &MainModel{
		library:        library,
		currentScreen:  PlaylistsScreen,
		playlistsModel: playlists.NewModel(library),
		songsModel:     nil, // Будет создана при выборе плейлиста
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.playlistsModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case playlists.PlaylistSelectedMsg:
		// Переключаемся на экран треков выбранного плейлиста
		songList, _ := m.library.Songs(msg.Name)
		m.currentScreen = SongsScreen
		m.songsModel = songs.NewModel(msg.Name, songList)
		return m, m.songsModel.Init()

	case songs.GoBackMsg:
		// Возвращаемся к списку плейлистов
		m.currentScreen = PlaylistsScreen
		m.songsModel = nil
		return m, nil

	case tea.WindowSizeMsg:
		// Передаем размеры окна модели списка плейлистов
		var playlistsCmd tea.Cmd
		m.playlistsModel, playlistsCmd = m.playlistsModel.Update(msg)
		return m, playlistsCmd
	}

	// Передаем сообщение активной модели
	switch m.currentScreen {
	case PlaylistsScreen:
		var playlistsCmd tea.Cmd
		m.playlistsModel, playlistsCmd = m.playlistsModel.Update(msg)
		cmd = playlistsCmd

	case SongsScreen:
		if m.songsModel != nil {
			var songsCmd tea.Cmd
			m.songsModel, songsCmd = m.songsModel.Update(msg)
			cmd = songsCmd
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case PlaylistsScreen:
		return m.playlistsModel.View()

	case SongsScreen:
		if m.songsModel != nil {
			return m.songsModel.View()
		}
		return "Ошибка: модель треков не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
