package booking

// RunMode selects how a multi-slot run is grown from the clicked slot.
type RunMode string

const (
	// RunByAvailableIndex takes the next available slots in order, even
	// when a disabled slot lies between them.
	RunByAvailableIndex RunMode = "available_index"
	// RunByClock requires each slot to start exactly SlotDuration after
	// the previous one.
	RunByClock RunMode = "clock"
)

// SelectRun expands clicked into the run of needed slots a booking will
// occupy, walking only the enabled entries of status.
func SelectRun(status []Slot, clicked string, needed int, mode RunMode) ([]string, error) {
	if needed < 1 {
		return nil, ErrInvalidSlotCount
	}

	available := make([]string, 0, len(status))
	startIndex := -1
	for _, s := range status {
		if s.Time == clicked {
			if s.Disabled {
				return nil, ErrSlotUnavailable
			}
			startIndex = len(available)
		}
		if !s.Disabled {
			available = append(available, s.Time)
		}
	}
	if startIndex < 0 {
		return nil, ErrSlotUnavailable
	}

	if len(available)-startIndex < needed {
		return nil, ErrInsufficientContiguousAvailable
	}
	run := available[startIndex : startIndex+needed]

	if mode == RunByClock {
		if err := checkClockContiguity(run); err != nil {
			return nil, err
		}
	}

	out := make([]string, len(run))
	copy(out, run)
	return out, nil
}

func checkClockContiguity(run []string) error {
	prev := -1
	for _, label := range run {
		m, err := ParseClock(label)
		if err != nil {
			return ErrInsufficientContiguousAvailable
		}
		if prev >= 0 && m-prev != slotMinutes {
			return ErrInsufficientContiguousAvailable
		}
		prev = m
	}
	return nil
}

func ParseRunMode(s string) RunMode {
	if RunMode(s) == RunByClock {
		return RunByClock
	}
	return RunByAvailableIndex
}

func ParseEmptySelectionPolicy(s string) EmptySelectionPolicy {
	if EmptySelectionPolicy(s) == OneSlotForEmpty {
		return OneSlotForEmpty
	}
	return RejectEmptySelection
}
