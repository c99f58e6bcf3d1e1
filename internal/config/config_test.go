package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigFromFile(t *testing.T) {
	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Создаем тестовую конфигурацию
	testConfig := Config{
		Affirmative: "yes",
		Title:       "Playlist Manager",
		NoColor:     true,
	}

	// Сериализуем конфигурацию в YAML
	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	// Записываем в файл
	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	// Загружаем конфигурацию
	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что конфигурация загружена корректно
	if loadedConfig.Affirmative != testConfig.Affirmative {
		t.Errorf("Ожидался Affirmative: %s, получено: %s", testConfig.Affirmative, loadedConfig.Affirmative)
	}
	if loadedConfig.Title != testConfig.Title {
		t.Errorf("Ожидался Title: %s, получено: %s", testConfig.Title, loadedConfig.Title)
	}
	if !loadedConfig.NoColor {
		t.Error("Ожидался NoColor: true")
	}
}

func TestDefaultConfig(t *testing.T) {
	// Создаем временный файл конфигурации с минимальными данными
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal_config.yaml")

	// Создаем минимальную конфигурацию (без Affirmative и Title)
	minimalConfig := map[string]bool{
		"no_color": true,
	}

	// Сериализуем в YAML
	data, err := yaml.Marshal(minimalConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	// Записываем в файл
	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	// Загружаем конфигурацию
	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что незаданные поля получили значения по умолчанию
	if loadedConfig.Affirmative != DefaultAffirmative {
		t.Errorf("Ожидался Affirmative по умолчанию: %s, получено: %s", DefaultAffirmative, loadedConfig.Affirmative)
	}
	if loadedConfig.Title != DefaultTitle {
		t.Errorf("Ожидался Title по умолчанию: %s, получено: %s", DefaultTitle, loadedConfig.Title)
	}
	if !loadedConfig.NoColor {
		t.Error("Ожидался NoColor: true")
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	// Отсутствующий файл не является ошибкой: возвращаются значения по умолчанию
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "missing.yaml")

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ожидалась конфигурация по умолчанию, получена ошибка: %v", err)
	}

	if loadedConfig.Affirmative != DefaultAffirmative {
		t.Errorf("Ожидался Affirmative по умолчанию: %s, получено: %s", DefaultAffirmative, loadedConfig.Affirmative)
	}
	if loadedConfig.Title != DefaultTitle {
		t.Errorf("Ожидался Title по умолчанию: %s, получено: %s", DefaultTitle, loadedConfig.Title)
	}
	if loadedConfig.NoColor {
		t.Error("Ожидался NoColor: false по умолчанию")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	// Создаем временный файл с некорректным YAML
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	// Записываем некорректный YAML
	invalidYAML := `affirmative: "yes"
title: [unclosed array
`
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	// Пытаемся загрузить некорректный файл
	_, err = LoadConfig(configPath)

	if err == nil {
		t.Error("Ожидалась ошибка при загрузке некорректного YAML")
	}
}
