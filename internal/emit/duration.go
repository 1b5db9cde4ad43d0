package emit

import (
	"fmt"
	"time"
)

// Human renders a wall-clock duration the way the stream reports it:
// sub-second timings collapse to "< 0.1s", seconds carry one decimal,
// longer spans switch to minute and hour units.
func Human(d time.Duration) string {
	hours := int64(d.Hours())
	minutes := int64(d.Minutes()) % 60
	seconds := int64(d.Seconds()) % 60
	tenths := (d.Milliseconds() % 1000) / 100

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	case d.Milliseconds() >= 100:
		return fmt.Sprintf("%d.%ds", seconds, tenths)
	default:
		return "< 0.1s"
	}
}
