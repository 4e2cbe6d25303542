// netinfo.go - Report the addresses peers can use to reach this host
//
// OUTPUT PATTERN (follows dashlan convention):
// - Struct with `json` tags = single source of truth for both formats
// - Human output: key=value format (scannable, parseable)
// - JSON output: --json flag for machine consumption
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dashops/dashlan/internal/config"
	"github.com/dashops/dashlan/internal/netinfo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var netinfoJSON bool

// NetinfoReport represents the reporter's findings (JSON-serializable)
type NetinfoReport struct {
	Connected bool   `json:"connected"`
	LANIP     string `json:"lan_ip,omitempty"`
	URL       string `json:"url,omitempty"`
	PublicIP  string `json:"public_ip"`
}

// NetinfoCmd reports LAN and public addresses
var NetinfoCmd = &cobra.Command{
	Use:   "netinfo",
	Short: "Report LAN and public IP addresses",
	Long: `Report which addresses can reach this host.

Prints the first non-loopback IPv4 address bound to a local interface,
the URL peers on the LAN would use, and the public address an external
echo service sees. Purely informational; always exits 0.

On multi-homed hosts the LAN pick is the first interface the OS
enumerates, which may differ between runs.

Examples:
  dashlan netinfo
  dashlan netinfo --json`,
	Run: func(cmd *cobra.Command, args []string) {
		runNetinfo()
	},
}

func init() {
	NetinfoCmd.Flags().BoolVar(&netinfoJSON, "json", false, "Output in JSON format")
}

func runNetinfo() {
	var report NetinfoReport

	if ip, ok := netinfo.FirstLANAddr(netinfo.SystemInterfaces); ok {
		report.Connected = true
		report.LANIP = ip
		report.URL = fmt.Sprintf("http://%s:%d", ip, config.DefaultPort)
	}

	ctx, cancel := context.WithTimeout(context.Background(), netinfo.DefaultPublicIPTimeout)
	defer cancel()

	pub, err := netinfo.PublicIP(ctx, nil, netinfo.PublicIPEndpoint)
	if err != nil {
		log.Debug().Err(err).Msg("public IP lookup failed")
		pub = netinfo.Unavailable
	}
	report.PublicIP = pub

	if netinfoJSON {
		outputJSON(report)
		return
	}

	if report.Connected {
		fmt.Printf("lan_ip=%s\n", report.LANIP)
		fmt.Printf("url=%s\n", report.URL)
	} else {
		fmt.Println("Not connected to a local network")
	}
	fmt.Printf("public_ip=%s\n", report.PublicIP)
}

// outputJSON outputs data as JSON
func outputJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
