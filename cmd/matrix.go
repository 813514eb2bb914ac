package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aiadvent/internal"
	"aiadvent/internal/config"
	"aiadvent/internal/llm"
	"aiadvent/internal/prompt"
	"aiadvent/internal/trial"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Перебрать все комбинации опциональных параметров запроса",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path := config.ResolvePath(flags.ConfigFilePath, "config.ini")
		cfg, err := config.LoadMatrix(path)
		if err != nil {
			fmt.Fprintf(out, "Ошибка чтения конфигурационного файла: %v\n", err)
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
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		})

		fmt.Fprintln(out, banner())
		fmt.Fprintln(out, "Перебор всех комбинаций опциональных параметров")
		fmt.Fprintln(out, banner())
		fmt.Fprintf(out, "Запрос: %s\n\n", cfg.Request.PromptTemplate)

		// Strictly sequential: each request is built fresh and awaited
		// before the next; a failed trial never stops the rest.
		for i, f := range trial.Combinations() {
			res := trial.Result{Index: i + 1, Flags: f}
			fmt.Fprintf(out, "--- Вариант %d: %s ---\n", res.Index, trial.Summary(f, cfg.Request))

			req := prompt.BuildTrialRequest(cfg.Request, f)
			var sp *internal.Spinner
			if !flags.Quiet {
				sp = internal.NewSpinner()
				sp.Start(fmt.Sprintf("Вариант %d из 8...", res.Index))
			}
			res.Answer, res.Err = client.Complete(cmd.Context(), req)
			if sp != nil {
				sp.Stop()
			}

			if res.Err != nil {
				log.Debug().Err(res.Err).Int("trial", res.Index).Msg("trial failed")
				fmt.Fprintf(out, "Ошибка: %v\n\n", res.Err)
				continue
			}
			fmt.Fprintf(out, "Ответ:\n%s\n\n", res.Answer)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
