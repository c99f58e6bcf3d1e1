package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlister/internal/playlist"
	"github.com/hazadus/go-playlister/internal/tui/playlists"
	"github.com/hazadus/go-playlister/internal/tui/songs"
)

// testLibrary создает библиотеку с тестовыми данными
func testLibrary(t *testing.T) *playlist.Library {
	t.Helper()

	library := playlist.NewLibrary()
	if err := library.Create("Road Trip"); err != nil {
		t.Fatalf("Ошибка создания плейлиста: %v", err)
	}
	if err := library.AddSong("Road Trip", "Sunny Day"); err != nil {
		t.Fatalf("Ошибка добавления трека: %v", err)
	}
	return library
}

func TestMainModelRouting(t *testing.T) {
	library := testLibrary(t)

	// Создаем главную модель
	model := NewMainModel(library)

	// Проверяем начальное состояние
	if model.currentScreen != PlaylistsScreen {
		t.Errorf("Expected initial screen to be PlaylistsScreen, got %v", model.currentScreen)
	}

	if model.playlistsModel == nil {
		t.Error("Expected playlistsModel to be initialized")
	}

	if model.songsModel != nil {
		t.Error("Expected songsModel to be nil initially")
	}

	// Тестируем переключение на экран треков
	selectedMsg := playlists.PlaylistSelectedMsg{Name: "Road Trip"}

	updatedModel, _ := model.Update(selectedMsg)
	model = updatedModel.(*MainModel)

	if model.currentScreen != SongsScreen {
		t.Errorf("Expected screen to be SongsScreen after PlaylistSelectedMsg, got %v", model.currentScreen)
	}

	if model.songsModel == nil {
		t.Error("Expected songsModel to be initialized after PlaylistSelectedMsg")
	}

	// Тестируем возврат к списку плейлистов
	goBackMsg := songs.GoBackMsg{}
	updatedModel, _ = model.Update(goBackMsg)
	model = updatedModel.(*MainModel)

	if model.currentScreen != PlaylistsScreen {
		t.Errorf("Expected screen to be PlaylistsScreen after GoBackMsg, got %v", model.currentScreen)
	}

	if model.songsModel != nil {
		t.Error("Expected songsModel to be nil after GoBackMsg")
	}

	// Тестируем глобальные горячие клавиши
	ctrlCMsg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := model.Update(ctrlCMsg)

	if cmd == nil {
		t.Error("Expected tea.Quit command after Ctrl+C")
	}
}

func TestMainModelView(t *testing.T) {
	library := testLibrary(t)

	model := NewMainModel(library)

	// Тестируем отображение списка плейлистов
	view := model.View()
	if view == "" {
		t.Error("Expected non-empty view for playlists screen")
	}

	// Переключаемся на экран треков
	selectedMsg := playlists.PlaylistSelectedMsg{Name: "Road Trip"}
	updatedModel, _ := model.Update(selectedMsg)
	model = updatedModel.(*MainModel)

	// Тестируем отображение треков
	view = model.View()
	if view == "" {
		t.Error("Expected non-empty view for songs screen")
	}

	// Тестируем состояние с несуществующим экраном
	model.currentScreen = ScreenType(999)
	view = model.View()
	expectedError := "Неизвестный экран"
	if view != expectedError {
		t.Errorf("Expected '%s' for unknown screen, got '%s'", expectedError, view)
	}
}
