package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pastemark/core/clipboard"
	"github.com/gaurav-prasanna/pastemark/core/convert"
	"github.com/gaurav-prasanna/pastemark/core/extract"
	"github.com/gaurav-prasanna/pastemark/core/server"
	"github.com/gaurav-prasanna/pastemark/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP API",
	Long: `Serve exposes the converter over HTTP until interrupted.

Endpoints:
  POST /api/convert  {"type":"text|html","data":"..."}
  POST /api/paste    {"text/html":"...","text/plain":"..."}
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Logger()
	conv := convert.New(
		convert.WithBaseURL(cfg.BaseURL),
		convert.WithLogger(log),
	)
	srv := server.New(conv, clipboard.New(extract.New()), server.Options{
		MaxInputChars:   cfg.MaxInputChars,
		ReadTimeout:     cfg.Server.ReadTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          log,
	})

	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
