package handlers

import "testing"

func TestCanonicalTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "10:00", want: "10:00"},
		{in: "10:0", want: "10:00"},
		{in: "9:30", want: "09:30"},
		{in: "9:5", want: "09:05"},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := canonicalTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("canonicalTime(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("canonicalTime(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("canonicalTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
