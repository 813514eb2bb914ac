package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"aiadvent/internal"
	"aiadvent/internal/config"
	"aiadvent/internal/llm"
	"aiadvent/internal/prompt"
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Сгенерировать ASCII-котика одним запросом",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Запуск приложения для генерации ASCII котика...")

		path := config.ResolvePath(flags.ConfigFilePath, "settings.toml")
		cfg, err := config.LoadCat(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(out, "Ошибка: файл %s не найден\n", path)
			} else {
				fmt.Fprintf(out, "Ошибка чтения конфигурационного файла: %v\n", err)
			}
			return nil
		}
		if err := cfg.Validate(); err != nil {
			if errors.Is(err, config.ErrPlaceholderAPIKey) {
				fmt.Fprintln(out, "Внимание: в конфигурации не указан API ключ. Пожалуйста, укажите ваш API ключ.")
			} else {
				fmt.Fprintf(out, "Ошибка конфигурации: %v\n", err)
			}
			return nil
		}

		client := llm.NewClient(llm.Options{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		})

		fmt.Fprintln(out, "Отправка запроса к LLM модели...")
		var sp *internal.Spinner
		if !flags.Quiet {
			sp = internal.NewSpinner()
			sp.Start("Ожидание ответа модели...")
		}
		answer, err := client.Complete(cmd.Context(), prompt.BuildCatRequest(cfg))
		if sp != nil {
			sp.Stop()
		}
		if err != nil {
			fmt.Fprintf(out, "Ошибка запроса к API: %v\n", err)
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, banner())
		fmt.Fprintln(out, "Ваш ASCII котик:")
		fmt.Fprintln(out, banner())
		fmt.Fprintln(out, answer)
		fmt.Fprintln(out, banner())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
