package main

import (
	"context"
	"guessword/internal/config"
	"guessword/internal/server"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "guessword",
		Short:         "Realtime two-player word description game server.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return server.Run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringP("port", "p", "8080", "port to listen on (env: PORT)")
	fs.BoolP("verbose", "v", false, "log every inbound frame (env: VERBOSE)")
	config.BindFlags(v, fs)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	return cmd
}

func main() {
	config.LoadDotEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err.Error())
	}
}
