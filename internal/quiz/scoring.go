package quiz

const (
	// BasePoints is awarded for every correct answer.
	BasePoints = 10
	// BonusDivisor converts remaining seconds into bonus points.
	BonusDivisor = 3
)

// Points returns the award for a correct answer given with timeRemaining
// seconds left: BasePoints plus one bonus point per BonusDivisor seconds.
func Points(timeRemaining int) int {
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	if timeRemaining > QuestionTime {
		timeRemaining = QuestionTime
	}
	return BasePoints + timeRemaining/BonusDivisor
}
