package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hazadus/go-playlister/internal/config"
	"github.com/hazadus/go-playlister/internal/playlist"
)

const (
	defaultConfigPath = "~/.playlister"
)

// Application хранит зависимости приложения: конфигурацию и библиотеку плейлистов.
// Библиотека живет только в памяти и создается заново при каждом запуске.
type Application struct {
	Config  *config.Config
	Library *playlist.Library
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Создаем приложение с пустой библиотекой
	app := &Application{
		Config:  cfg,
		Library: playlist.NewLibrary(),
	}

	rootCmd := app.createRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
