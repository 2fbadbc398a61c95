package goal

// NextStatus is the goal lifecycle state machine: a pure function of the
// previous status and the freshly computed progress.
//
// completed is terminal here: recomputation never reverts it, even when
// progress falls back below 100 (reverting is an explicit caller action).
// on_hold is sticky while progress stays strictly between 0 and 100.
func NextStatus(prev Status, progress int) Status {
	if prev == StatusCompleted {
		return StatusCompleted
	}
	if progress >= 100 {
		return StatusCompleted
	}
	if progress <= 0 {
		return StatusNotStarted
	}
	if prev == StatusOnHold {
		return StatusOnHold
	}
	return StatusInProgress
}
