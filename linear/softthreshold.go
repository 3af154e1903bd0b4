package linear

// SoftThreshold is the proximal operator of gamma·|x|:
// sign(z)·max(|z|−gamma, 0). It is odd in z and zero for |z| <= gamma.
func SoftThreshold(z, gamma float64) float64 {
	switch {
	case z > gamma:
		return z - gamma
	case z < -gamma:
		return z + gamma
	default:
		return 0
	}
}
