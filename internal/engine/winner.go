// internal/engine/winner.go
// Winner update logic: apply, change, or clear a court's winner
// idempotently, reversing the previously recorded (win,loss) contributions.

package engine

// UpdateWinner implements the winner state machine. It locates the
// court by courtNumber, reverses any previously recorded winner's
// contribution, records the new one (if any), and returns the round with
// that court's winner replaced. A missing court or a no-op winner change
// returns the round unchanged.
func (h *HistoryTracker) UpdateWinner(courtNumber int, newWinner Winner, round *Round) *Round {
	court := round.CourtByNumber(courtNumber)
	if court == nil {
		return round
	}

	prevWinner := court.Winner
	if prevWinner == newWinner {
		return round
	}

	if prevWinner != NoWinner {
		h.ReverseWinForCourt(courtNumber)
	}

	court.Winner = newWinner

	if newWinner != NoWinner {
		h.RecordWins([]*Court{court})
	}

	return round
}
