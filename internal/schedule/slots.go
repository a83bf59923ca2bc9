package schedule

// GenerateTimeSlots produces the ordered sequence of "HH:MM" strings from
// startHour:00 up to but excluding endHour:00, stepping by intervalMinutes.
// It is used for the fixed time axis of the day and week calendar views.
// startHour >= endHour or a non-positive interval yields an empty sequence.
func GenerateTimeSlots(startHour, endHour, intervalMinutes int) []string {
	slots := make([]string, 0)
	if intervalMinutes <= 0 {
		return slots
	}
	end := TimeOfDay(endHour * 60)
	for t := TimeOfDay(startHour * 60); t < end; t += TimeOfDay(intervalMinutes) {
		slots = append(slots, t.String())
	}
	return slots
}
