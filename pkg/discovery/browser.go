package discovery

import (
	"context"
	"net"

	"github.com/enbility/zeroconf/v3"
)

// Browser finds network IIO daemons.
type Browser interface {
	// Browse searches for daemons. The channel is closed when the
	// context is cancelled or browsing completes.
	Browse(ctx context.Context) (<-chan *DaemonService, error)

	// FindAll collects every daemon visible within the configured
	// browse timeout.
	FindAll(ctx context.Context) ([]*DaemonService, error)

	// Stop stops all active browsing operations.
	Stop()
}

// MDNSBrowser implements the Browser interface using zeroconf.
type MDNSBrowser struct {
	config BrowserConfig
	cancel context.CancelFunc
}

// NewMDNSBrowser creates a new mDNS browser.
func NewMDNSBrowser(config BrowserConfig) (*MDNSBrowser, error) {
	if config.BrowseTimeout == 0 {
		config.BrowseTimeout = BrowseTimeout
	}
	return &MDNSBrowser{config: config}, nil
}

// Browse searches for network IIO daemons.
// Services are aggregated by instance name - addresses from multiple
// interfaces are combined into a single entry. Removals are handled
// when interfaces disappear.
func (b *MDNSBrowser) Browse(ctx context.Context) (<-chan *DaemonService, error) {
	out := make(chan *DaemonService)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := b.browserOptions()

	// Process entries with aggregation
	go func() {
		defer close(out)

		// Track services by instance name, aggregating addresses
		services := make(map[string]*DaemonService)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := entryToDaemon(entry)

				existing, found := services[svc.InstanceName]
				if found {
					// Merge addresses into existing entry
					existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				} else {
					// New service - store and emit
					services[svc.InstanceName] = svc
					select {
					case out <- svc:
					case <-ctx.Done():
						return
					}
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				// Remove addresses that came from this interface
				if existing, found := services[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					// If no addresses remain, remove the service
					if len(existing.Addresses) == 0 {
						delete(services, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Start browsing in background
	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeDaemon, Domain, entries, removed, opts...)
	}()

	return out, nil
}

// FindAll collects every daemon visible within the browse timeout.
func (b *MDNSBrowser) FindAll(ctx context.Context) ([]*DaemonService, error) {
	ctx, cancel := context.WithTimeout(ctx, b.config.BrowseTimeout)
	defer cancel()
	b.cancel = cancel

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	var daemons []*DaemonService
	for svc := range results {
		daemons = append(daemons, svc)
	}
	return daemons, nil
}

// Stop stops all active browsing operations.
func (b *MDNSBrowser) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

// browserOptions returns zeroconf client options based on config.
func (b *MDNSBrowser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	// Select specific interface if configured
	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}

	return opts
}

// ServiceEntry is a transport-neutral mDNS service entry.
// This is a helper for Browser implementations and tests.
type ServiceEntry struct {
	Instance string
	Service  string
	Domain   string
	Host     string
	Port     uint16
	Text     []string
	Addrs    []string
}

// ToDaemonService converts a ServiceEntry to a DaemonService.
func (e *ServiceEntry) ToDaemonService() *DaemonService {
	return &DaemonService{
		InstanceName: e.Instance,
		Host:         e.Host,
		Port:         e.Port,
		Addresses:    e.Addrs,
		Description:  decodeDescriptionTXT(e.Text),
	}
}

// entryToDaemon converts a zeroconf entry to a DaemonService.
func entryToDaemon(entry *zeroconf.ServiceEntry) *DaemonService {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	e := ServiceEntry{
		Instance: entry.Instance,
		Service:  ServiceTypeDaemon,
		Domain:   Domain,
		Host:     entry.HostName,
		Port:     uint16(entry.Port),
		Text:     entry.Text,
		Addrs:    addrs,
	}
	return e.ToDaemonService()
}

// mergeAddresses combines address lists, preserving order and dropping
// duplicates.
func mergeAddresses(existing, found []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}

	for _, addr := range found {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses removes addresses from a zeroconf entry from the list.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	toRemove := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		toRemove[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		toRemove[ip.String()] = true
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}

// Ensure MDNSBrowser implements Browser interface.
var _ Browser = (*MDNSBrowser)(nil)
