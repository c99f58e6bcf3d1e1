package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlister/internal/shell"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "playlister",
		Short: "An interactive terminal tool to manage playlists",
		Long:  `An interactive terminal tool to create playlists, add songs and simulate playback.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runShell(os.Stdin, os.Stdout)
		},
	}

	// Добавляем команды, передавая в них экземпляр приложения
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}

// runShell запускает интерактивную оболочку с меню
func (app *Application) runShell(in io.Reader, out io.Writer) error {
	return shell.NewShell(app.Library, app.Config, in, out).Run()
}
