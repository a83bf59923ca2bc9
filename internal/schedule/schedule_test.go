package schedule

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

// 2025-06-02 is a Monday, 2025-06-03 a Tuesday.
var (
	monday  = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
)

func mustParseWeekly(t *testing.T, wire map[string][]string) WeeklySchedule {
	t.Helper()
	ws, err := FromWire(wire)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	return ws
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"9:00", 540, false}, // missing zero-padding is unambiguous numerically
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1200", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(510).String(); got != "08:30" {
		t.Errorf("String() = %q, want %q", got, "08:30")
	}
	if got := TimeOfDay(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("09:00-17:30")
	if err != nil {
		t.Fatalf("ParseTimeRange failed: %v", err)
	}
	if r.Start != 540 || r.End != 1050 {
		t.Errorf("ParseTimeRange = %+v, want start 540 end 1050", r)
	}

	for _, bad := range []string{"09:00", "09:00-", "-17:00", "09:00-17:00-18:00", "9am-5pm"} {
		if _, err := ParseTimeRange(bad); err == nil {
			t.Errorf("ParseTimeRange(%q) expected error", bad)
		}
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots(8, 20, 30)
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("first slot = %q, want 08:00", slots[0])
	}
	if slots[len(slots)-1] != "19:30" {
		t.Errorf("last slot = %q, want 19:30", slots[len(slots)-1])
	}

	if slots := GenerateTimeSlots(9, 9, 30); len(slots) != 0 {
		t.Errorf("equal bounds should yield no slots, got %v", slots)
	}
	if slots := GenerateTimeSlots(12, 9, 30); len(slots) != 0 {
		t.Errorf("inverted bounds should yield no slots, got %v", slots)
	}
	if slots := GenerateTimeSlots(8, 20, 0); len(slots) != 0 {
		t.Errorf("zero interval should yield no slots, got %v", slots)
	}
}

func TestCovers(t *testing.T) {
	ws := mustParseWeekly(t, map[string][]string{
		"monday": {"09:00-12:00", "14:00-17:00"},
	})

	tests := []struct {
		date time.Time
		time string
		want bool
	}{
		{monday, "10:00", true},
		{monday, "09:00", true}, // start boundary inclusive
		{monday, "12:00", true}, // end boundary inclusive
		{monday, "13:00", false},
		{monday, "17:30", false},
		{tuesday, "10:00", false},
	}
	for _, tt := range tests {
		tod, err := ParseTimeOfDay(tt.time)
		if err != nil {
			t.Fatalf("bad test time %q: %v", tt.time, err)
		}
		if got := ws.Covers(tt.date, tod); got != tt.want {
			t.Errorf("Covers(%s, %s) = %v, want %v", tt.date.Weekday(), tt.time, got, tt.want)
		}
	}

	var empty WeeklySchedule
	if empty.Covers(monday, 600) {
		t.Error("empty schedule should cover nothing")
	}
}

func TestDaySlots(t *testing.T) {
	ws := mustParseWeekly(t, map[string][]string{
		"monday": {"09:00-12:00", "14:00-17:00"},
	})

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}
	got := ws.DaySlots(monday, 30)
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i, tod := range got {
		if tod.String() != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, tod.String(), want[i])
		}
	}

	// No slot may start at or past a window's end.
	for _, tod := range ws.DaySlots(monday, 45) {
		if tod >= 720 && tod < 840 || tod >= 1020 {
			t.Errorf("slot %s starts outside working windows", tod)
		}
	}

	if slots := ws.DaySlots(tuesday, 30); len(slots) != 0 {
		t.Errorf("day off should have no slots, got %v", slots)
	}
}

func TestDaySlotsPure(t *testing.T) {
	ws := mustParseWeekly(t, map[string][]string{"friday": {"08:00-10:00"}})
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	first := ws.DaySlots(friday, 30)
	second := ws.DaySlots(friday, 30)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged: %v vs %v", first, second)
	}
}

func TestWeeklyScheduleJSON(t *testing.T) {
	ws := mustParseWeekly(t, map[string][]string{
		"monday":   {"09:00-12:00"},
		"saturday": {"10:00-13:00"},
	})

	data, err := json.Marshal(ws)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded WeeklySchedule
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(ws, decoded) {
		t.Errorf("round trip mismatch: %+v vs %+v", ws, decoded)
	}

	// The wire object must key by lowercase weekday names.
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("wire shape unmarshal failed: %v", err)
	}
	if got := raw["monday"]; len(got) != 1 || got[0] != "09:00-12:00" {
		t.Errorf("wire monday = %v, want [09:00-12:00]", got)
	}
	if _, ok := raw["tuesday"]; !ok {
		t.Error("wire shape should include days off as empty lists")
	}
}

func TestUnmarshalSkipsMalformedRanges(t *testing.T) {
	var ws WeeklySchedule
	payload := `{"monday":["09:00-12:00","garbage","25:00-26:00"],"funday":["09:00-10:00"]}`
	if err := json.Unmarshal([]byte(payload), &ws); err != nil {
		t.Fatalf("unmarshal should tolerate bad ranges, got %v", err)
	}
	if got := len(ws[time.Monday]); got != 1 {
		t.Errorf("expected only the valid monday range to survive, got %d", got)
	}
}

func TestFromWireRejectsMalformed(t *testing.T) {
	if _, err := FromWire(map[string][]string{"monday": {"garbage"}}); err == nil {
		t.Error("FromWire should reject malformed ranges")
	}
	if _, err := FromWire(map[string][]string{"funday": {"09:00-10:00"}}); err == nil {
		t.Error("FromWire should reject unknown weekday names")
	}
}
