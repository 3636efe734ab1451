// Command notifier ejecuta el disparador de resúmenes por email fuera del proceso API
// (cron del sistema, job programado) y permite previsualizar el resumen de un propietario.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "notifier",
		Short:         "Lembretes RentCare: resumen diario por email",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("debug", false, "log en nivel debug")

	rootCmd.AddCommand(
		RunCmd(),
		PreviewCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
