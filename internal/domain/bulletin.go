package domain

// MaxBulletinBytes is the longest bulletin payload APRS allows (APRS101 p.83).
const MaxBulletinBytes = 67

// Bulletin is a broadcast APRS message. Bulletins are constructed fresh for
// each send and never persisted.
type Bulletin struct {
	// Text is the payload, at most MaxBulletinBytes bytes.
	Text string

	// ID is a single digit 0-9 for bulletins or a single uppercase letter
	// A-Z for announcements.
	ID byte
}

// NewBulletin validates the payload length and ID and returns a Bulletin.
func NewBulletin(text string, id byte) (Bulletin, error) {
	if len(text) > MaxBulletinBytes {
		return Bulletin{}, ErrBulletinTooLong
	}
	if !validBulletinID(id) {
		return Bulletin{}, ErrInvalidBulletinID
	}
	return Bulletin{Text: text, ID: id}, nil
}

func validBulletinID(id byte) bool {
	return (id >= '0' && id <= '9') || (id >= 'A' && id <= 'Z')
}
