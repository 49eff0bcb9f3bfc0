package domain

import (
	"net"
	"strconv"
)

// DefaultPort is the APRS-IS client port used by tier-2 servers.
const DefaultPort = 14580

// ServerEndpoint identifies an APRS-IS tier-2 relay. Immutable configuration.
type ServerEndpoint struct {
	Host string
	Port int
}

// Addr returns the endpoint in host:port form.
func (e ServerEndpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Credentials holds the station identity used for the APRS-IS logon.
// Immutable configuration.
type Credentials struct {
	// Callsign is the callsign-SSID used as the sender address.
	Callsign string

	// Passcode is the APRS-IS passcode matching the callsign.
	Passcode string

	// SoftwareName and SoftwareVersion identify the client in the logon line.
	SoftwareName    string
	SoftwareVersion string

	// Filter is the server-side filter expression requested at logon.
	Filter string
}
