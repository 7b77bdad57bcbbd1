package discovery

import (
	"net"
	"strconv"
	"time"
)

// Service constants for mDNS.
const (
	// ServiceTypeDaemon is the service type network IIO daemons advertise.
	ServiceTypeDaemon = "_iio._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the default IIO daemon port.
	DefaultPort = 30431
)

// TXT record key constants.
const (
	// TXTKeyDescription carries the daemon's context description.
	TXTKeyDescription = "description"
)

// BrowseTimeout is the default timeout for one-shot find operations.
const BrowseTimeout = 10 * time.Second

// DaemonService is one discovered network IIO daemon.
type DaemonService struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// Host is the daemon's hostname.
	Host string

	// Port is the daemon's TCP port.
	Port uint16

	// Addresses are the daemon's resolved IP addresses, aggregated
	// across interfaces.
	Addresses []string

	// Description is the advertised context description, "" when the
	// daemon advertises none.
	Description string
}

// URI returns the backend URI a network transport would connect to,
// preferring the hostname over raw addresses.
func (s *DaemonService) URI() string {
	host := s.Host
	if host == "" && len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return "ip:" + net.JoinHostPort(host, strconv.FormatUint(uint64(s.Port), 10))
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout is the default timeout for find operations.
	// Default: 10 seconds.
	BrowseTimeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
	}
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to advertise on.
	// Empty string means all interfaces.
	Interface string

	// TTL overrides the record time-to-live when non-zero.
	TTL time.Duration
}
