package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/folio-arcade/internal/logging"
	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
	"github.com/vovakirdan/folio-arcade/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagAccessLog   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arcade over SSH and/or HTTP",
	Long: `Start the SSH server, the HTTP/WebSocket server, or both.

Each SSH connection gets its own session with the full menu.
Browsers open the HTTP address and play over a WebSocket.
Both share one scores database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.folio/host_key

Examples:
  folio serve                              # SSH on :23234
  folio serve --ssh "" --http :8080        # HTTP only
  folio serve --ssh :2222 --http :8080     # both
  folio serve --http :8080 --access-log ./access.log

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP/WebSocket server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagAccessLog, "access-log", "", "Write HTTP access logs as JSON to this file")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		fail("nothing to serve: set --ssh and/or --http")
	}
	if err := serve(); err != nil {
		fail("%v", err)
	}
}

// serve runs the enabled servers until interrupted or one of them fails.
func serve() error {
	logger, closer := newLogger("folio", false)
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	shared := deps(store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

		sshServer, err := tui.NewSSHServer(sshCfg, shared)
		if err != nil {
			return fmt.Errorf("creating SSH server: %w", err)
		}
		fmt.Printf("SSH:  ssh localhost -p %s\n", portOf(flagSSHAddr))
		g.Go(func() error { return sshServer.ListenAndServe(ctx) })
	}

	if flagHTTPAddr != "" {
		access := logging.NewAccessLogger(flagAccessLog)
		defer access.Sync()

		httpServer := web.New(
			web.WithStore(store),
			web.WithCatFacts(shared.Facts),
			web.WithContact(shared.Contact),
			web.WithLogger(logger.WithPrefix("http")),
			web.WithAccessLog(access),
			web.WithRuntime(runtimeConfig()),
		)
		fmt.Printf("HTTP: http://localhost:%s/\n", portOf(flagHTTPAddr))
		g.Go(func() error { return httpServer.ListenAndServe(ctx, flagHTTPAddr) })
	}

	fmt.Println("Press Ctrl+C to stop")
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("servers stopped")
	return nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
