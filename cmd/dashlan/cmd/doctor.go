package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/dashops/dashlan/internal/launcher"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// DoctorCmd diagnoses the runtime fallback chain
var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the Streamlit runtime fallback chain",
	Long: `Check each runtime candidate in priority order.

Shows which candidate 'dashlan serve' would pick and where each
executable lives. Exits 1 when no candidate is runnable.

Examples:
  dashlan doctor`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDoctor())
	},
}

func runDoctor() int {
	candidates := launcher.DefaultCandidates()
	res := launcher.Resolve(candidates, nil)

	fmt.Println()
	color.Cyan("=== Streamlit Runtime Check ===")
	fmt.Println()

	for _, c := range candidates {
		path, err := exec.LookPath(c.Bin)
		switch {
		case err != nil:
			color.Red("✗ %-22s not found", c.Name)
		case res.State == launcher.StateResolved && c.Bin == res.Candidate.Bin:
			color.Green("✓ %-22s %s (selected)", c.Name, path)
		default:
			fmt.Printf("  %-22s %s\n", c.Name, path)
		}
	}

	fmt.Println()
	if res.State != launcher.StateResolved {
		color.Red("No Streamlit runtime found")
		color.Yellow("💡 Install one with: pip install streamlit")
		return 1
	}
	color.Green("Ready: dashlan serve will use %s", res.Candidate.Name)
	return 0
}
