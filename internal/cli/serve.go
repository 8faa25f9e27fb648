package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-artifex/internal/httpapi"
	"github.com/ironsheep/image-artifex/internal/server"
)

const shutdownTimeout = 10 * time.Second

// mcpCommand runs the MCP tool server over stdio.
func (c *CLI) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP tool server on stdin and stdout",
		Long:  `Run a Model Context Protocol server speaking JSON-RPC 2.0 over stdio. Logs go to stderr so they never mix with protocol output.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := c.newMCPServer()
			if err != nil {
				return err
			}
			c.Logger.Info("MCP server ready", "filter", c.cfg.Render.Filter)
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newMCPServer() (*server.Server, error) {
	bg, err := c.cfg.Background()
	if err != nil {
		return nil, err
	}
	return server.New(
		server.WithLogger(c.Logger),
		server.WithImageOptions(c.cfg.ImageOptions()...),
		server.WithQuality(c.cfg.Render.Quality),
		server.WithBackground(bg),
	), nil
}

// serveCommand runs the HTTP server until the context is cancelled.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, root string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve transformed images over HTTP",
		Long:  `Serve images below a root directory, transformed on the fly: GET /thumb/photos/cat.jpg?width=200&height=100.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.HTTP.Addr
			}
			if root == "" {
				root = c.cfg.HTTP.Root
			}
			handler, err := c.newHTTPHandler(root)
			if err != nil {
				return err
			}
			return c.listen(cmd.Context(), addr, handler.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&root, "root", "", "directory images are served from (default from config)")
	return cmd
}

func (c *CLI) newHTTPHandler(root string) (*httpapi.Handler, error) {
	bg, err := c.cfg.Background()
	if err != nil {
		return nil, err
	}
	return httpapi.New(httpapi.Config{
		Root:         root,
		Quality:      c.cfg.Render.Quality,
		Background:   bg,
		ImageOptions: c.cfg.ImageOptions(),
		Logger:       c.Logger,
	}), nil
}

func (c *CLI) listen(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("HTTP server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		c.Logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return ctx.Err()
	}
}
