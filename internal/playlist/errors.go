package playlist

import "fmt"

// Kind определяет вид ошибки доменной модели
type Kind int

// Константы для видов ошибок
const (
	// KindPlaylistAlreadyExists - плейлист с таким именем уже существует
	KindPlaylistAlreadyExists Kind = iota
	// KindPlaylistNotFound - плейлист не найден
	KindPlaylistNotFound
	// KindSongAlreadyInPlaylist - трек уже есть в плейлисте
	KindSongAlreadyInPlaylist
	// KindSongNotFound - трек не найден в плейлисте
	KindSongNotFound
	// KindEmptyPlaylist - плейлист пуст
	KindEmptyPlaylist
	// KindOffline - нет подключения к интернету
	KindOffline
	// KindInvalidUser - зарезервировано на будущее, сейчас не возникает
	KindInvalidUser
)

// Error представляет ошибку доменной модели.
// Subject содержит имя плейлиста или трека, к которому относится ошибка.
type Error struct {
	Kind    Kind
	Subject string
}

// Error возвращает человекочитаемое сообщение об ошибке
func (e *Error) Error() string {
	switch e.Kind {
	case KindPlaylistAlreadyExists:
		return fmt.Sprintf("Плейлист '%s' уже существует.", e.Subject)
	case KindPlaylistNotFound:
		return fmt.Sprintf("Плейлист '%s' не найден.", e.Subject)
	case KindSongAlreadyInPlaylist:
		return fmt.Sprintf("Трек '%s' уже есть в плейлисте.", e.Subject)
	case KindSongNotFound:
		return fmt.Sprintf("Трек '%s' не найден.", e.Subject)
	case KindEmptyPlaylist:
		return fmt.Sprintf("Плейлист '%s' пуст.", e.Subject)
	case KindOffline:
		return "Нет подключения к интернету – попробуйте ещё раз."
	case KindInvalidUser:
		return "Недопустимое имя пользователя."
	default:
		return "Неизвестная ошибка."
	}
}

// newError создает ошибку указанного вида
func newError(kind Kind, subject string) *Error {
	return &Error{Kind: kind, Subject: subject}
}
