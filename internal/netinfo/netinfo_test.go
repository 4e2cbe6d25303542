package netinfo

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func ipnet(cidr string) net.Addr {
	ip, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}
	network.IP = ip
	return network
}

func fixedTable(ifaces ...Iface) Lister {
	return func() ([]Iface, error) {
		return ifaces, nil
	}
}

func TestFirstLANAddrPicksFirstInEnumerationOrder(t *testing.T) {
	list := fixedTable(
		Iface{Name: "lo0", Flags: net.FlagUp | net.FlagLoopback, Addrs: []net.Addr{ipnet("127.0.0.1/8")}},
		Iface{Name: "en0", Flags: net.FlagUp, Addrs: []net.Addr{ipnet("192.168.1.42/24")}},
		Iface{Name: "en1", Flags: net.FlagUp, Addrs: []net.Addr{ipnet("10.0.0.7/8")}},
	)

	ip, ok := FirstLANAddr(list)
	if !ok {
		t.Fatal("expected an address")
	}
	if ip != "192.168.1.42" {
		t.Errorf("got %q, want first enumerated address 192.168.1.42", ip)
	}
}

func TestFirstLANAddrSkipsDownInterfaces(t *testing.T) {
	list := fixedTable(
		Iface{Name: "en0", Flags: 0, Addrs: []net.Addr{ipnet("192.168.1.42/24")}},
		Iface{Name: "en1", Flags: net.FlagUp, Addrs: []net.Addr{ipnet("10.0.0.7/8")}},
	)

	ip, ok := FirstLANAddr(list)
	if !ok || ip != "10.0.0.7" {
		t.Errorf("got %q %v, want 10.0.0.7 from the up interface", ip, ok)
	}
}

func TestFirstLANAddrSkipsIPv6(t *testing.T) {
	list := fixedTable(
		Iface{Name: "en0", Flags: net.FlagUp, Addrs: []net.Addr{
			ipnet("fe80::1/64"),
			ipnet("172.16.0.9/12"),
		}},
	)

	ip, ok := FirstLANAddr(list)
	if !ok || ip != "172.16.0.9" {
		t.Errorf("got %q %v, want the IPv4 address 172.16.0.9", ip, ok)
	}
}

func TestFirstLANAddrLoopbackOnly(t *testing.T) {
	list := fixedTable(
		Iface{Name: "lo0", Flags: net.FlagUp | net.FlagLoopback, Addrs: []net.Addr{ipnet("127.0.0.1/8")}},
	)

	ip, ok := FirstLANAddr(list)
	if ok {
		t.Errorf("got %q, want no address on a loopback-only host", ip)
	}
	if ip != "" {
		t.Errorf("got %q, want empty string when not connected", ip)
	}
}

func TestFirstLANAddrListError(t *testing.T) {
	list := func() ([]Iface, error) {
		return nil, errors.New("interface table unavailable")
	}

	if ip, ok := FirstLANAddr(list); ok {
		t.Errorf("got %q, want no address when enumeration fails", ip)
	}
}

func TestPublicIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("203.0.113.7\n"))
	}))
	defer srv.Close()

	ip, err := PublicIP(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("PublicIP: %v", err)
	}
	if ip != "203.0.113.7" {
		t.Errorf("got %q, want 203.0.113.7", ip)
	}
}

func TestPublicIPRejectsNonAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>blocked</html>"))
	}))
	defer srv.Close()

	if ip, err := PublicIP(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Errorf("got %q, want error for a non-address body", ip)
	}
}

func TestPublicIPNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if ip, err := PublicIP(context.Background(), nil, url); err == nil {
		t.Errorf("got %q, want error when the echo service is unreachable", ip)
	}
}

func TestPublicIPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := PublicIP(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("want error on non-200 status")
	}
}
