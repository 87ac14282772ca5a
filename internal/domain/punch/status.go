package punch

// DayStatusOf derives the legal state of an employee's day from that day's
// punch events. The decision rests solely on the most recent event by
// RecordedAt: clock_in and break_end mean working, break_start means on
// break, clock_out means finished. No events means the day has not started.
//
// Events with a zero RecordedAt (malformed timestamps upstream) are ignored
// so one bad row cannot flip the day state.
func DayStatusOf(events []PunchEvent) DayStatus {
	var last *PunchEvent
	for i := range events {
		e := &events[i]
		if e.RecordedAt.IsZero() {
			continue
		}
		if last == nil || e.RecordedAt.After(last.RecordedAt) {
			last = e
		}
	}

	if last == nil {
		return StatusNotStarted
	}

	switch last.RecordType {
	case TypeClockIn, TypeBreakEnd:
		return StatusWorking
	case TypeBreakStart:
		return StatusOnBreak
	case TypeClockOut:
		return StatusFinished
	}
	return StatusNotStarted
}
