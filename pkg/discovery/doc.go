// Package discovery implements mDNS/DNS-SD discovery of network IIO
// daemons.
//
// Daemons that serve a context over the network advertise the
// _iio._tcp service. Browsing yields one DaemonService per instance
// with its resolved addresses; DaemonService.URI renders the backend
// URI ("ip:host:port") a network transport would connect to. This
// package only finds daemons, it never connects to them.
//
// Daemon hosts can use Advertiser to announce their own context with
// a short description TXT record.
package discovery
