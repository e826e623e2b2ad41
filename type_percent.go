package positions

import "fmt"

// Percent is a share expressed in percent, 100 being the whole.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
