package calculation

// Shortfall returns the funding gap between the target purchase price
// and currently available funds (loan plus cash). The gap is never
// negative: a surplus yields 0.
func Shortfall(targetPrice, loanAmount, availableAssets int64) int64 {
	gap := targetPrice - (loanAmount + availableAssets)
	if gap < 0 {
		return 0
	}
	return gap
}
