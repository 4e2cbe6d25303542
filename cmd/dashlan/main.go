// dashlan - serve a Streamlit dashboard on the local network.
//
// A single binary that reports which addresses peers can use to reach
// this host and launches the dashboard process with LAN-reachable
// binding, on macOS, Linux, and Windows.
package main

import (
	"os"

	// Bootstrap MUST be imported first to set the log level before command packages initialize
	_ "github.com/dashops/dashlan/internal/bootstrap"

	"github.com/dashops/dashlan/cmd/dashlan/cmd"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashlan",
		Short: "Run a Streamlit dashboard reachable from the local network",
		Long: `dashlan launches a Streamlit dashboard bound to every local
interface so phones and laptops on the same network can open it.

TYPICAL WORKFLOW:
  1. dashlan doctor    # Check a Streamlit runtime is installed
  2. dashlan netinfo   # See which addresses peers can use
  3. dashlan serve     # Launch the dashboard on the LAN

KEY COMMANDS:
  serve     - Resolve a Streamlit runtime and run the dashboard
  netinfo   - Report LAN and public addresses
  doctor    - Diagnose the runtime fallback chain`,
	}

	// Pass version to the version command
	cmd.SetVersion(Version)

	rootCmd.AddCommand(cmd.VersionCmd)
	rootCmd.AddCommand(cmd.NetinfoCmd)
	rootCmd.AddCommand(cmd.ServeCmd)
	rootCmd.AddCommand(cmd.DoctorCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
