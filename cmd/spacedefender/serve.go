package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Space Defender SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the setup menu. The SSH user
name becomes the default pilot name. All users share one high-score table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacedefender/host_key

Examples:
  spacedefender serve                           # Listen on :23234 with auto-generated key
  spacedefender serve --ssh :2222               # Listen on port 2222
  spacedefender serve --host-key ./my_host_key  # Use specific host key
  spacedefender serve --db postgres://localhost/defender

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default: from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default: from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{store: true})
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	cfg := tui.SSHServerConfig{
		Address:     a.cfg.SSH.Address,
		HostKeyPath: config.ExpandHome(a.cfg.SSH.HostKey),
		IdleTimeout: a.cfg.SSH.IdleTimeout,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, a.deps())
	if err != nil {
		a.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Space Defender SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		stop()
		a.Close()
		fail("server: %v", err)
	}
}
