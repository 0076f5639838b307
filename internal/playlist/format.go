package playlist

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as MM:SS.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
