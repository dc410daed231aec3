package cli

import (
	"context"
	"time"

	"github.com/shandysiswandi/gonotif/internal/app"
	"github.com/spf13/cobra"
)

var shutdownTimeout time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown deadline")
}

func runServe(_ *cobra.Command, _ []string) error {
	timeout := shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully

	return nil
}
