// Package netinfo discovers the addresses peers can use to reach this host.
//
// Two lookups: the first non-loopback IPv4 bound to a local interface
// (what a phone on the same Wi-Fi would dial) and the public address an
// external echo service sees. Both are informational; absence is a
// reportable state, not an error.
package netinfo

import (
	"net"
)

// Iface is a snapshot of one network interface: its flags and the
// addresses bound to it. Decoupled from net.Interface so callers can
// fabricate hosts in tests.
type Iface struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// Lister produces the host's interface table. The real implementation
// is SystemInterfaces; tests substitute fixed tables.
type Lister func() ([]Iface, error)

// SystemInterfaces reads the live OS interface table.
func SystemInterfaces() ([]Iface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Iface, 0, len(ifaces))
	for _, ifc := range ifaces {
		addrs, err := ifc.Addrs()
		if err != nil {
			// Interface vanished or is unqueryable; skip it.
			continue
		}
		out = append(out, Iface{Name: ifc.Name, Flags: ifc.Flags, Addrs: addrs})
	}
	return out, nil
}

// FirstLANAddr returns the first non-loopback IPv4 address bound to an
// up interface. "First" means first in enumeration order, and
// enumeration order is whatever the OS reports: on multi-homed hosts
// the pick can differ between runs. Operators rely on that behavior,
// so no tie-break rule is imposed here.
func FirstLANAddr(list Lister) (string, bool) {
	ifaces, err := list()
	if err != nil {
		return "", false
	}
	for _, ifc := range ifaces {
		if ifc.Flags&net.FlagUp == 0 || ifc.Flags&net.FlagLoopback != 0 {
			continue
		}
		for _, addr := range ifc.Addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipnet.IP.To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}
			return ip.String(), true
		}
	}
	return "", false
}
