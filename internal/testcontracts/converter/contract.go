package converter

// Reward converter test double: a pure, monotone, nonlinear bonding-curve
// style mapping from a primary reward amount to a derived amount.

const reserve = 1000

// Convert maps a primary reward amount to the derived reward amount.
func Convert(amount int) int {
	if amount <= 0 {
		return 0
	}

	return amount * reserve / (reserve + amount)
}
