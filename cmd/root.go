package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aiadvent/internal/logging"
)

type Flags struct {
	ConfigFilePath string
	Debug          bool
	Quiet          bool
}

var flags Flags

var rootCmd = &cobra.Command{
	Use:   "aiadvent",
	Short: "Упражнения с chat-completion API",
	Long: `aiadvent — маленькие упражнения с OpenAI-совместимым chat-completion API.

  aiadvent cat     один запрос с фиксированным промптом (ASCII-котик)
  aiadvent matrix  перебор всех комбинаций опциональных параметров запроса`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(flags.Debug)
		// .env may hold the key referenced by api_key_env.
		if err := godotenv.Load(); err == nil {
			log.Debug().Msg("loaded .env")
		}
	},
}

// Execute runs the root command. Only flag/usage errors exit non-zero;
// run-level failures are printed by the commands themselves.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFilePath, "config", "c", "", "путь к конфигурационному файлу")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "подробное логирование")
	rootCmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "не показывать индикатор ожидания")
}
