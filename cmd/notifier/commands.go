package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rentcare/rentcare-api/internal/bootstrap"
	"github.com/rentcare/rentcare-api/pkg/config"
	"github.com/rentcare/rentcare-api/pkg/logger"
)

// setup carga configuración, logger (a stderr) y servicios.
func setup(cmd *cobra.Command) (*bootstrap.Services, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	level := cfg.App.LogLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})

	svc, err := bootstrap.New(cmd.Context(), cfg, log, bootstrap.WithOneShot())
	if err != nil {
		return nil, nil, err
	}
	return svc, log, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// RunCmd ejecuta una pasada del disparador e imprime el resultado JSON en stdout.
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Enviar hoy los avisos de 5 y 1 día a todos los propietarios con email activo",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			cmd.SetContext(ctx)

			svc, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			resp, err := svc.Trigger.Run(ctx)
			if err != nil {
				return err
			}
			log.Info().Int("landlords", len(resp.Results)).Msg("pasada completada")
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

type previewOutput struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Count   int    `json:"count"`
	Inbox   any    `json:"inbox"`
	HTML    string `json:"html,omitempty"`
}

// PreviewCmd muestra lo que recibiría hoy un propietario sin enviar nada.
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Previsualizar el resumen de un propietario sin enviarlo",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			if userID == "" {
				return fmt.Errorf("--user es requerido")
			}
			withHTML, _ := cmd.Flags().GetBool("html")

			ctx, cancel := signalContext()
			defer cancel()
			cmd.SetContext(ctx)

			svc, _, err := setup(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			digest, err := svc.Trigger.Preview(ctx, userID)
			if err != nil {
				return err
			}
			reminders, err := svc.Calendar.List(ctx, userID)
			if err != nil {
				return err
			}

			out := previewOutput{
				UserID:  userID,
				Subject: digest.Subject,
				Count:   len(digest.Events),
				Inbox:   reminders.Inbox,
			}
			if withHTML {
				out.HTML = digest.HTML
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().String("user", "", "user_id del propietario")
	cmd.Flags().Bool("html", false, "incluir el cuerpo HTML del email")
	return cmd
}
