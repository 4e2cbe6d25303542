// lanip prints the local LAN IP address and nothing else.
// Cross-platform (macOS, Linux, Windows). Script-friendly companion to
// 'dashlan netinfo'.
//
// Usage: go run ./cmd/lanip
package main

import (
	"fmt"
	"os"

	"github.com/dashops/dashlan/internal/netinfo"
)

func main() {
	ip, ok := netinfo.FirstLANAddr(netinfo.SystemInterfaces)
	if !ok {
		fmt.Fprintln(os.Stderr, "Could not determine LAN IP")
		os.Exit(1)
	}
	fmt.Println(ip)
}
