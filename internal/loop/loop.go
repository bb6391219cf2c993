// Package loop runs a single local game in the current terminal.
package loop

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wavesurvivor/internal/loop/client"
)

// Run plays on the local terminal until the player quits or ctx ends.
// r must be a raw-mode terminal reader.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, logger *log.Logger) error {
	username := os.Getenv("USER")
	if username == "" {
		username = "local"
	}
	c := client.NewClient(r, w, client.ClientOptions{
		Username: username,
		Remote:   "local",
		Logger:   logger,
	})
	return c.Run(ctx)
}
