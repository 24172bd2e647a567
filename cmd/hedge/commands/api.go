package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/api"
	"github.com/wonny/betahedge/internal/api/handlers"
	"github.com/wonny/betahedge/internal/risk"
)

func newAPICmd(root *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "API 서버 시작",
		Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health         - Health check
  POST /api/analyze    - 페어 분석 (Report JSON)
  POST /api/hedge      - 포지션 사이징
  GET  /api/sample     - 데모 가격 (?period=&seed=)

Example:
  go run ./cmd/hedge api
  go run ./cmd/hedge api --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPIServer(cmd, root, port)
		},
	}

	// Flags
	cmd.Flags().StringVar(&port, "port", "", "API 서버 포트 (기본: PORT)")

	return cmd
}

func runAPIServer(cmd *cobra.Command, root *rootOptions, port string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Beta Hedge API Server ===")

	// 1. Load config + logger
	cfg, log, err := loadRuntime(root)
	if err != nil {
		return err
	}

	// Override port if flag is set
	if port != "" {
		cfg.Port = port
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 2. Create service + handler
	svc := analysis.NewService(risk.NewEngine(), cfg.Hedge, log)
	pairHandler := handlers.NewPairHandler(svc, cfg.Sample, cfg.API.MaxBodyBytes, log)

	// 3. Create router + server
	router := api.NewRouter(pairHandler, cfg.API, log)
	server := api.New(cfg, log, router)

	// 4. Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Fprintf(out, "\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Fprintln(out, "\nAvailable endpoints:")
	fmt.Fprintln(out, "  GET  /health")
	fmt.Fprintln(out, "  POST /api/analyze")
	fmt.Fprintln(out, "  POST /api/hedge")
	fmt.Fprintln(out, "  GET  /api/sample")
	fmt.Fprintln(out, "\nPress Ctrl+C to stop")

	// Wait for interrupt signal (main의 NotifyContext) 또는 기동 실패
	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
