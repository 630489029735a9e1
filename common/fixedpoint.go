package common

// FeeDenominator is the 18-decimal fixed-point scale used for fee factors.
const FeeDenominator = 1_000_000_000_000_000_000

// RewardScale returns the fixed-point scale of reward integral accumulators.
// It is built at runtime because the 1e20 value does not fit a Go integer
// constant, while NeoVM integers hold it fine.
func RewardScale() int {
	scale := 1
	for i := 0; i < 20; i++ {
		scale = scale * 10
	}

	return scale
}

// FeeMul multiplies an amount by an 18-decimal fixed-point factor,
// rounding down.
func FeeMul(amount, factor int) int {
	return amount * factor / FeeDenominator
}
