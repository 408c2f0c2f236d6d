package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"4", 4, true},
		{"4 stars", 4, true},
		{"  12abc", 12, true},
		{"-3", -3, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"stars 4", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseTableNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{"Table 3", 3, true},
		{"table3", 3, true},
		{"TABLE 12 please", 12, true},
		{"Table", 0, false},
		{"window", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseTableNumber(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStateRoundTrip(t *testing.T) {
	states := []State{
		Idle{},
		BookingName{},
		BookingDate{Name: "Alice"},
		BookingTime{Name: "Alice", Date: "2024-06-01"},
		BookingTable{Name: "Alice", Date: "2024-06-01", Time: "19:00"},
		FeedbackRating{},
		FeedbackComment{Rating: 5},
	}
	for _, st := range states {
		got, err := DecodeState(EncodeState(st))
		assert.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := DecodeState(StateRecord{Kind: "booking_everything"})
	assert.Error(t, err)
}
