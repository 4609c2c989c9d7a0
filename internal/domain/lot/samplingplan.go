package lot

import "math"

// RequiredContainers returns the number of containers that must be physically
// opened for a delivery of n containers, per the square-root-plus-one sampling
// plan: ceil(sqrt(n) + 1). n is the declared container count as stated on the
// delivery paperwork; it is not validated against the received mass.
func RequiredContainers(n int) int {
	if n <= 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n)) + 1))
}
