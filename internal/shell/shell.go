// Package shell содержит интерактивную оболочку приложения с текстовым меню
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlister/internal/config"
	"github.com/hazadus/go-playlister/internal/playlist"
)

// Варианты пунктов меню
const (
	choiceCreate = "1"
	choiceAdd    = "2"
	choicePlay   = "3"
	choiceList   = "4"
	choiceQuit   = "0"
)

// Shell представляет интерактивную оболочку над библиотекой плейлистов.
// Ввод и вывод передаются снаружи, чтобы оболочку можно было тестировать
// без терминала.
type Shell struct {
	library *playlist.Library
	config  *config.Config
	reader  *bufio.Reader
	writer  io.Writer

	headerStyle  lipgloss.Style
	sectionStyle lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
}

// NewShell создает новую оболочку над указанной библиотекой
func NewShell(library *playlist.Library, cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	shell := &Shell{
		library: library,
		config:  cfg,
		reader:  bufio.NewReader(in),
		writer:  out,
	}

	// Настраиваем стили вывода; при no_color оставляем стили пустыми
	if cfg.NoColor {
		shell.headerStyle = lipgloss.NewStyle()
		shell.sectionStyle = lipgloss.NewStyle()
		shell.successStyle = lipgloss.NewStyle()
		shell.errorStyle = lipgloss.NewStyle()
		shell.warningStyle = lipgloss.NewStyle()
	} else {
		shell.headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
		shell.sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		shell.successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
		shell.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		shell.warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	}

	return shell
}

// Run запускает цикл меню. Возвращается при выборе пункта "0"
// или при завершении потока ввода.
func (s *Shell) Run() error {
	for {
		s.clearScreen()
		s.printHeader()
		s.printMenu()

		choice, err := s.readLine()
		if err != nil && choice == "" {
			// Поток ввода закрыт - выходим так же, как по пункту "0"
			return nil
		}

		switch choice {
		case choiceCreate:
			s.handleCreate()
		case choiceAdd:
			s.handleAddSong()
		case choicePlay:
			s.handlePlay()
		case choiceList:
			s.handleList()
		case choiceQuit:
			s.clearScreen()
			fmt.Fprintln(s.writer, "  До встречи! 👋")
			return nil
		default:
			s.printWarning("Недопустимый выбор.")
			s.pause()
		}
	}
}

// handleCreate обрабатывает создание нового плейлиста
func (s *Shell) handleCreate() {
	s.clearScreen()
	s.printHeader()
	s.printSection("Создание плейлиста")

	name := s.prompt("Название плейлиста:")
	if name == "" {
		s.printWarning("Название не может быть пустым.")
	} else if err := s.library.Create(name); err != nil {
		s.printError(err)
	} else {
		s.printOk(fmt.Sprintf("Плейлист '%s' создан!", name))
	}
	s.pause()
}

// handleAddSong обрабатывает добавление трека в плейлист
func (s *Shell) handleAddSong() {
	s.clearScreen()
	s.printHeader()
	s.printSection("Добавление трека")

	s.printPlaylists()
	fmt.Fprintln(s.writer)

	playlistName := s.prompt("Название плейлиста:")
	songName := s.prompt("Название трека:")

	if playlistName == "" || songName == "" {
		s.printWarning("Поля не могут быть пустыми.")
	} else if err := s.library.AddSong(playlistName, songName); err != nil {
		s.printError(err)
	} else {
		s.printOk(fmt.Sprintf("'%s' добавлен в '%s'!", songName, playlistName))
	}
	s.pause()
}

// handlePlay обрабатывает воспроизведение трека.
// При ошибке отсутствия подключения пользователю предлагается одна
// повторная попытка с принудительным online; политика повторов
// принадлежит оболочке, доменная модель о ней не знает.
func (s *Shell) handlePlay() {
	s.clearScreen()
	s.printHeader()
	s.printSection("Воспроизведение трека")

	s.printPlaylists()
	fmt.Fprintln(s.writer)

	playlistName := s.prompt("Название плейлиста:")
	songName := s.prompt("Название трека:")
	online := s.promptYesNo(fmt.Sprintf("Вы в сети? (%s/н):", s.config.Affirmative))

	if playlistName == "" || songName == "" {
		s.printWarning("Поля не могут быть пустыми.")
		s.pause()
		return
	}

	message, err := s.library.Play(playlistName, songName, online)
	if err == nil {
		s.printOk(message)
		s.pause()
		return
	}
	s.printError(err)

	// Единственная повторная попытка при ошибке подключения
	var domainErr *playlist.Error
	if errors.As(err, &domainErr) && domainErr.Kind == playlist.KindOffline {
		if s.promptYesNo(fmt.Sprintf("Попробовать ещё раз? (%s/н):", s.config.Affirmative)) {
			if message, err := s.library.Play(playlistName, songName, true); err != nil {
				s.printError(err)
			} else {
				s.printOk(message)
			}
		}
	}
	s.pause()
}

// handleList обрабатывает вывод всех плейлистов с треками
func (s *Shell) handleList() {
	s.clearScreen()
	s.printHeader()
	s.printSection("Все плейлисты")
	s.printPlaylists()
	s.pause()
}

// printPlaylists выводит все плейлисты с нумерованными списками треков
func (s *Shell) printPlaylists() {
	fmt.Fprintln(s.writer)
	if s.library.Len() == 0 {
		fmt.Fprintln(s.writer, "  (плейлистов пока нет)")
		return
	}

	for _, name := range s.library.Names() {
		fmt.Fprintf(s.writer, "  📁  %s\n", name)
		songs, _ := s.library.Songs(name)
		if len(songs) == 0 {
			fmt.Fprintln(s.writer, "       (нет треков)")
			continue
		}
		for i, song := range songs {
			fmt.Fprintf(s.writer, "       %d. %s\n", i+1, song)
		}
	}
}

// prompt выводит подпись поля и читает одну строку ввода без пробелов по краям
func (s *Shell) prompt(label string) string {
	fmt.Fprintf(s.writer, "  %s ", label)
	line, _ := s.readLine()
	return line
}

// promptYesNo задает вопрос да/нет. Утвердительным считается только
// настроенный токен без учета регистра, любой другой ввод - отрицание.
func (s *Shell) promptYesNo(label string) bool {
	answer := s.prompt(label)
	return strings.EqualFold(answer, s.config.Affirmative)
}

// readLine читает одну строку ввода и убирает пробелы по краям
func (s *Shell) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	return strings.TrimSpace(line), err
}

// pause ждет, пока пользователь нажмет Enter
func (s *Shell) pause() {
	fmt.Fprintln(s.writer)
	s.prompt("Нажмите Enter, чтобы продолжить...")
}

// clearScreen очищает экран терминала
func (s *Shell) clearScreen() {
	fmt.Fprint(s.writer, "\x1B[2J\x1B[H")
}

// printHeader выводит шапку приложения
func (s *Shell) printHeader() {
	title := fmt.Sprintf("🎵  %s  🎵", s.config.Title)
	fmt.Fprintln(s.writer, s.headerStyle.Render("  "+title))
	fmt.Fprintln(s.writer)
}

// printSection выводит заголовок раздела меню
func (s *Shell) printSection(title string) {
	fmt.Fprintf(s.writer, "  %s\n\n", s.sectionStyle.Render("── "+title+" ──"))
}

// printMenu выводит главное меню
func (s *Shell) printMenu() {
	fmt.Fprintln(s.writer, "  [1]  Создать плейлист")
	fmt.Fprintln(s.writer, "  [2]  Добавить трек в плейлист")
	fmt.Fprintln(s.writer, "  [3]  Воспроизвести трек")
	fmt.Fprintln(s.writer, "  [4]  Показать все плейлисты")
	fmt.Fprintln(s.writer, "  [0]  Выход")
	fmt.Fprint(s.writer, "\n  Выбор: ")
}

// printOk выводит сообщение об успехе
func (s *Shell) printOk(message string) {
	fmt.Fprintf(s.writer, "\n  %s\n", s.successStyle.Render("✅  "+message))
}

// printError выводит сообщение об ошибке
func (s *Shell) printError(err error) {
	fmt.Fprintf(s.writer, "\n  %s\n", s.errorStyle.Render("❌  "+err.Error()))
}

// printWarning выводит предупреждение
func (s *Shell) printWarning(message string) {
	fmt.Fprintf(s.writer, "\n  %s\n", s.warningStyle.Render("⚠️   "+message))
}
