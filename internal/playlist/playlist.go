// Package playlist содержит доменную модель плейлистов
package playlist

import (
	"fmt"
	"sort"
)

// Library хранит все плейлисты приложения: имя плейлиста -> список треков.
// Треки хранятся в порядке добавления, дубликаты внутри плейлиста запрещены.
// Library живет все время работы процесса и никуда не сохраняется.
type Library struct {
	playlists map[string][]string
}

// NewLibrary создает новую пустую библиотеку плейлистов
func NewLibrary() *Library {
	return &Library{
		playlists: make(map[string][]string),
	}
}

// Create создает новый пустой плейлист с указанным именем.
// Проверка на пустое имя выполняется вызывающей стороной.
func (l *Library) Create(name string) error {
	if _, exists := l.playlists[name]; exists {
		return newError(KindPlaylistAlreadyExists, name)
	}
	l.playlists[name] = []string{}
	return nil
}

// AddSong добавляет трек в конец плейлиста.
// Сначала проверяется существование плейлиста, затем отсутствие дубликата;
// при ошибке состояние библиотеки не меняется.
func (l *Library) AddSong(playlistName, songName string) error {
	songs, exists := l.playlists[playlistName]
	if !exists {
		return newError(KindPlaylistNotFound, playlistName)
	}
	for _, song := range songs {
		if song == songName {
			return newError(KindSongAlreadyInPlaylist, songName)
		}
	}
	l.playlists[playlistName] = append(songs, songName)
	return nil
}

// Play запускает воспроизведение трека из плейлиста.
// Предусловия проверяются строго по порядку: существование плейлиста,
// непустой плейлист, наличие трека, наличие подключения. Так структурные
// ошибки всплывают раньше временной ошибки подключения, и повторная попытка
// с принудительным online безопасна. Библиотека при этом не изменяется.
func (l *Library) Play(playlistName, songName string, online bool) (string, error) {
	songs, exists := l.playlists[playlistName]
	if !exists {
		return "", newError(KindPlaylistNotFound, playlistName)
	}
	if len(songs) == 0 {
		return "", newError(KindEmptyPlaylist, playlistName)
	}

	found := false
	for _, song := range songs {
		if song == songName {
			found = true
			break
		}
	}
	if !found {
		return "", newError(KindSongNotFound, songName)
	}

	if !online {
		return "", newError(KindOffline, "")
	}

	return fmt.Sprintf("♪  Сейчас играет: '%s'  ♪", songName), nil
}

// Names возвращает имена всех плейлистов в лексикографическом порядке
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.playlists))
	for name := range l.playlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Songs возвращает копию списка треков плейлиста.
// Второй результат равен false, если плейлист не существует.
func (l *Library) Songs(name string) ([]string, bool) {
	songs, exists := l.playlists[name]
	if !exists {
		return nil, false
	}
	result := make([]string, len(songs))
	copy(result, songs)
	return result, true
}

// Len возвращает количество плейлистов в библиотеке
func (l *Library) Len() int {
	return len(l.playlists)
}
