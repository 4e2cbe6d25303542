package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dashops/dashlan/internal/config"
	"github.com/dashops/dashlan/internal/launcher"
	"github.com/dashops/dashlan/internal/netinfo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	servePort int
	serveBind string
)

// ServeCmd resolves a Streamlit runtime and runs the dashboard in the foreground
var ServeCmd = &cobra.Command{
	Use:   "serve [app]",
	Short: "Launch the dashboard bound to the local network",
	Long: `Resolve a Streamlit runtime and run the dashboard in the foreground.

Tries python3 with the streamlit module first, then python, then a
streamlit binary on PATH. The dashboard binds 0.0.0.0 so peers on the
LAN can reach it. Ctrl+C stops both dashlan and the dashboard.

Settings come from ~/.dashlan/config.yaml when present; flags win.

Examples:
  dashlan serve                  # run employee_dashboard_fixed.py
  dashlan serve sales.py         # run a different dashboard
  dashlan serve --port 8600      # non-default port`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "Server port (default 8501)")
	ServeCmd.Flags().StringVar(&serveBind, "bind", "", "Bind address (default 0.0.0.0)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveBind != "" {
		cfg.Bind = serveBind
	}
	if len(args) > 0 {
		cfg.App = args[0]
	}

	res := launcher.Resolve(launcher.DefaultCandidates(), nil)
	if res.State != launcher.StateResolved {
		fmt.Fprintln(os.Stderr, "No Streamlit runtime found.")
		fmt.Fprintln(os.Stderr, "Install one with: pip install streamlit")
		os.Exit(1)
	}
	log.Debug().Str("candidate", res.Candidate.Name).Str("path", res.Path).Msg("resolved runtime")

	printConnectionInfo(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = launcher.Run(ctx, res.Invocation(cfg.App, cfg.Port, cfg.Bind))
	if ctx.Err() != nil {
		// Operator interrupt is a normal stop.
		return nil
	}
	if err != nil {
		os.Exit(launcher.ExitCode(err))
	}
	return nil
}

// printConnectionInfo duplicates the reporter's LAN lookup inline so the
// URLs appear right above the child's own startup output.
func printConnectionInfo(cfg *config.Config) {
	host := "localhost"
	if ip, ok := netinfo.FirstLANAddr(netinfo.SystemInterfaces); ok {
		host = ip
	}

	fmt.Printf("Starting dashboard: %s\n", cfg.App)
	fmt.Printf("  Local:   http://localhost:%d\n", cfg.Port)
	fmt.Printf("  Network: http://%s:%d\n", host, cfg.Port)
	fmt.Println("Press Ctrl+C to stop")
}
