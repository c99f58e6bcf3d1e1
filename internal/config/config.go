// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Значения конфигурации по умолчанию
const (
	// DefaultAffirmative - слово, которым пользователь отвечает "да"
	DefaultAffirmative = "д"
	// DefaultTitle - заголовок приложения
	DefaultTitle = "Менеджер плейлистов"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	Affirmative string `yaml:"affirmative"` // Утвердительный ответ в диалогах да/нет
	Title       string `yaml:"title"`       // Заголовок в шапке приложения
	NoColor     bool   `yaml:"no_color"`    // Отключить цветное оформление вывода
}

// NewConfig создает конфигурацию со значениями по умолчанию
func NewConfig() *Config {
	return &Config{
		Affirmative: DefaultAffirmative,
		Title:       DefaultTitle,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файл отсутствует, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// Если файл не найден, используем значения по умолчанию
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.Affirmative == "" {
		config.Affirmative = DefaultAffirmative
	}
	if config.Title == "" {
		config.Title = DefaultTitle
	}

	return config, nil
}
