package utils

import (
	"crypto/rand"
	"math/big"
	"time"
)

// Alphabet for the random suffix. Visually confusable characters (0/O, 1/I)
// are excluded so a reference can be read back over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referencePrefix = "TAJ-"

// NewBookingReference builds a display reference of the form TAJ-YYMMDD plus
// four random characters. Collisions are unlikely but not impossible; the
// bookings table enforces uniqueness.
func NewBookingReference(now time.Time) string {
	buf := make([]byte, 0, len(referencePrefix)+10)
	buf = append(buf, referencePrefix...)
	buf = now.AppendFormat(buf, "060102")
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a clock-derived index rather than aborting a booking.
			buf = append(buf, referenceAlphabet[time.Now().UnixNano()%int64(len(referenceAlphabet))])
			continue
		}
		buf = append(buf, referenceAlphabet[n.Int64()])
	}
	return string(buf)
}
