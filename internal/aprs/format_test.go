package aprs

import (
	"strings"
	"testing"

	"github.com/iot-kits/aprsbln/internal/domain"
)

func TestPadNumeric(t *testing.T) {
	tests := []struct {
		value float64
		width int
		want  string
	}{
		{7, 3, "007"},
		{42.4, 4, "0042"},
		{42.5, 4, "0043"},
		{0, 2, "00"},
		{999, 3, "999"},
		// Overflow is not silently truncated.
		{1234, 3, "1234"},
	}
	for _, tt := range tests {
		if got := PadNumeric(tt.value, tt.width); got != tt.want {
			t.Errorf("PadNumeric(%v, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}

func TestPadCallsignAlwaysNine(t *testing.T) {
	for n := 0; n <= 50; n++ {
		in := strings.Repeat("A", n)
		if got := PadCallsign(in); len(got) != 9 {
			t.Fatalf("PadCallsign(%d chars) returned %d chars", n, len(got))
		}
	}
	if got := PadCallsign("N0CALL-2"); got != "N0CALL-2 " {
		t.Errorf("PadCallsign(N0CALL-2) = %q", got)
	}
	if got := PadCallsign("VERYLONGCALL-15"); got != "VERYLONGC" {
		t.Errorf("PadCallsign truncation = %q", got)
	}
}

func TestEncodeLocation(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     string
	}{
		{0, 0, "0000.00N/00000.00E"},
		{40.5, -74.0, "4030.00N/07400.00W"},
		{-33.8688, 151.2093, "3352.13S/15112.56E"},
		// Out-of-range inputs clamp to the poles and the antimeridian.
		{95, 200, "9000.00N/18000.00E"},
		{-95, -200, "9000.00S/18000.00W"},
	}
	for _, tt := range tests {
		if got := EncodeLocation(tt.lat, tt.lon); got != tt.want {
			t.Errorf("EncodeLocation(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestBulletinEnvelope(t *testing.T) {
	f := Frames{Callsign: "N0CALL-2"}
	b, err := domain.NewBulletin("A stitch in time saves nine.", 'M')
	if err != nil {
		t.Fatal(err)
	}

	got := f.Bulletin(b)
	want := "N0CALL-2>APRS,TCPIP*::BLNM     :A stitch in time saves nine."
	if got != want {
		t.Fatalf("Bulletin = %q, want %q", got, want)
	}

	// The ID field sits at a fixed offset: ':', "BLN", id, five spaces, ':'.
	rest, found := strings.CutPrefix(got, "N0CALL-2>APRS,TCPIP*:")
	if !found {
		t.Fatal("missing header")
	}
	if rest[0] != ':' || rest[1:4] != "BLN" || rest[4] != 'M' || rest[5:10] != "     " || rest[10] != ':' {
		t.Errorf("envelope fields misplaced: %q", rest)
	}
	if rest[11:] != b.Text {
		t.Errorf("payload = %q, want %q", rest[11:], b.Text)
	}
}

func TestAckFrame(t *testing.T) {
	f := Frames{Callsign: "N0CALL-2"}
	got := f.Ack("W4KRL-2", "003")
	want := "N0CALL-2>APRS,TCPIP*::W4KRL-2  :ack003"
	if got != want {
		t.Errorf("Ack = %q, want %q", got, want)
	}
}

func TestPositionFrame(t *testing.T) {
	f := Frames{Callsign: "N0CALL-2"}
	got := f.Position(40.5, -74.0, "aprsbln")
	want := "N0CALL-2>APRS,TCPIP*:!4030.00N/07400.00W-aprsbln"
	if got != want {
		t.Errorf("Position = %q, want %q", got, want)
	}
}
