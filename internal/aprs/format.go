package aprs

import (
	"fmt"
	"math"

	"github.com/iot-kits/aprsbln/internal/domain"
)

// APRS data type identifiers, APRS101 p.17.
const (
	idPosition  = '!'
	idMessage   = ':'
	idWeather   = '_'
	idComment   = '#'
	idTelemetry = 'T'
)

// tocallPath is the destination and digi path used on every outbound frame.
const tocallPath = ">APRS,TCPIP*:"

// PadNumeric rounds value to the nearest integer and zero-pads it to width
// digits. If the rounded magnitude does not fit in width digits the output
// is longer than width; it is not silently truncated.
func PadNumeric(value float64, width int) string {
	return fmt.Sprintf("%0*d", width, int(math.Round(value)))
}

// PadCallsign left-justifies the callsign-SSID in a field of exactly nine
// characters, truncating or space-padding as needed (APRS101 pp.12, 71).
func PadCallsign(call string) string {
	return fmt.Sprintf("%-9.9s", call)
}

// EncodeLocation converts decimal degrees to the APRS DDmm.mmN/DDDmm.mmW
// form. Latitude is clamped to [-90, 90] and longitude to [-180, 180];
// hemisphere letters follow the sign.
func EncodeLocation(lat, lon float64) string {
	lat = math.Min(math.Max(lat, -90), 90)
	lon = math.Min(math.Max(lon, -180), 180)

	latHemi, lonHemi := "N", "E"
	if lat < 0 {
		latHemi = "S"
		lat = -lat
	}
	if lon < 0 {
		lonHemi = "W"
		lon = -lon
	}

	latDeg := int(lat)
	latMin := 60 * (lat - float64(latDeg))
	lonDeg := int(lon)
	lonMin := 60 * (lon - float64(lonDeg))

	return fmt.Sprintf("%02d%05.2f%s/%03d%05.2f%s",
		latDeg, latMin, latHemi, lonDeg, lonMin, lonHemi)
}

// Frames builds outbound APRS-IS frames for one station.
type Frames struct {
	Callsign string
}

// Bulletin formats a bulletin frame (APRS101 p.83):
//
//	____________________________
//	|:|BLN|ID|-----|:| Message |
//	|1| 3 | 1|  5  |1| 0 to 67 |
//	|_|___|__|_____|_|_________|
func (f Frames) Bulletin(b domain.Bulletin) string {
	return f.Callsign + tocallPath + ":BLN" + string(b.ID) + "     :" + b.Text
}

// Ack formats a message acknowledgment addressed to recipient. The
// addressee field is padded to exactly nine characters.
func (f Frames) Ack(recipient, msgID string) string {
	return f.Callsign + tocallPath + string(idMessage) + PadCallsign(recipient) + string(idMessage) + "ack" + msgID
}

// Position formats a position report without timestamp.
func (f Frames) Position(lat, lon float64, comment string) string {
	return f.Callsign + tocallPath + string(idPosition) + EncodeLocation(lat, lon) + "-" + comment
}
