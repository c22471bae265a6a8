package game

import "math/rand"

// MilestoneStep is the number of points between celebrations.
const MilestoneStep = 10

var cheers = []string{"Well done!", "Awesome!", "Great job!", "Fantastic!", "Superb!"}

// Milestones tracks the next score that deserves a celebration.
type Milestones struct {
	next int
}

func NewMilestones() *Milestones {
	return &Milestones{next: MilestoneStep}
}

// Reset rearms the tracker for a new round.
func (m *Milestones) Reset() {
	m.next = MilestoneStep
}

// Next returns the score of the next milestone.
func (m *Milestones) Next() int {
	return m.next
}

// Check reports whether score reached the pending milestone and, if so,
// moves on to the following one. Only one milestone fires per call.
func (m *Milestones) Check(score int) bool {
	if score < m.next {
		return false
	}
	m.next += MilestoneStep
	return true
}

// Cheer picks a celebration message.
func Cheer(rng *rand.Rand) string {
	return cheers[rng.Intn(len(cheers))]
}

// EndMessage is the encouragement shown when time runs out.
func EndMessage(score int) string {
	switch {
	case score >= 40:
		return "Awesome! You smashed it!"
	case score >= 25:
		return "Well done! Great catching!"
	case score >= 10:
		return "Nice work! Keep it up!"
	default:
		return "Good try! Keep practicing!"
	}
}
