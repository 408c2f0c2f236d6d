package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/testutil"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T) (*Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewEngine(
		services.NewAvailabilityService(db, nil),
		services.NewFeedbackService(db),
		services.NewMenuService(db),
	), db
}

type step struct {
	input     string
	wantKind  StateKind
	wantReply string
}

func runSteps(t *testing.T, e *Engine, steps []step) State {
	t.Helper()
	var state State = Idle{}
	for _, s := range steps {
		var reply string
		state, reply = e.Step(context.Background(), state, s.input)
		assert.Equal(t, s.wantKind, state.Kind(), "input %q", s.input)
		if s.wantReply != "" {
			assert.Equal(t, s.wantReply, reply, "input %q", s.input)
		}
	}
	return state
}

func TestEngineBookingFlow(t *testing.T) {
	e, db := newTestEngine(t)
	testutil.SeedTables(t, db, 1, 2)

	runSteps(t, e, []step{
		{"I want to book a table", KindBookingName, replyAskName},
		{"Alice", KindBookingDate, "Nice to meet you, Alice! What date? (YYYY-MM-DD)"},
		{"2024-06-01", KindBookingTime, replyAskTime},
		{"19:00", KindBookingTable, "Choose a table: 1, 2"},
		{"Table 1", KindIdle, replyBooked},
	})

	var reservations []models.Reservation
	require.NoError(t, db.Find(&reservations).Error)
	require.Len(t, reservations, 1)
	assert.Equal(t, "Alice", reservations[0].CustomerName)
	assert.Equal(t, 1, reservations[0].TableNumber)
	assert.Equal(t, "2024-06-01", reservations[0].Date)
	assert.Equal(t, "19:00", reservations[0].Time)
}

func TestEngineBookingDraftCarried(t *testing.T) {
	e, db := newTestEngine(t)
	testutil.SeedTables(t, db, 4)

	state := runSteps(t, e, []step{
		{"reserve please", KindBookingName, ""},
		{"Bob", KindBookingDate, ""},
		{"2024-12-24", KindBookingTime, ""},
		{"20:30", KindBookingTable, "Choose a table: 4"},
	})
	assert.Equal(t, BookingTable{Name: "Bob", Date: "2024-12-24", Time: "20:30"}, state)
}

func TestEngineBookingTableReprompt(t *testing.T) {
	e, _ := newTestEngine(t)
	state := BookingTable{Name: "Bob", Date: "2024-12-24", Time: "20:30"}

	next, reply := e.Step(context.Background(), state, "the one by the window")
	assert.Equal(t, state, next)
	assert.Equal(t, replyInvalidTable, reply)
}

func TestEngineBookingFailureApologizes(t *testing.T) {
	e, db := newTestEngine(t)
	testutil.SeedTables(t, db, 1)

	// meja 7 tidak ada
	next, reply := e.Step(context.Background(), BookingTable{Name: "Bob", Date: "2024-12-24", Time: "20:30"}, "7")
	assert.Equal(t, KindIdle, next.Kind())
	assert.Equal(t, replyBookingFailed, reply)
}

func TestEngineNoTablesReturnsIdle(t *testing.T) {
	e, db := newTestEngine(t)
	testutil.SeedTables(t, db, 1)

	_, err := services.NewAvailabilityService(db, nil).CreateReservation(context.Background(), services.ReservationInput{
		CustomerName: "Alice", TableNumber: 1, Date: "2024-06-01", Time: "19:00",
	})
	require.NoError(t, err)

	next, reply := e.Step(context.Background(), BookingTime{Name: "Bob", Date: "2024-06-01"}, "19:00")
	assert.Equal(t, Idle{}, next)
	assert.Equal(t, replyNoTables, reply)
}

func TestEngineFeedbackFlow(t *testing.T) {
	e, db := newTestEngine(t)

	runSteps(t, e, []step{
		{"I'd like to leave feedback", KindFeedbackRating, replyAskRating},
		{"5", KindFeedbackComment, replyAskComment},
		{"Great food", KindIdle, replyThanks},
	})

	var feedbacks []models.Feedback
	require.NoError(t, db.Find(&feedbacks).Error)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, 5, feedbacks[0].Rating)
	assert.Equal(t, "Great food", feedbacks[0].Comment)
	assert.Equal(t, models.FeedbackSourceChatbot, feedbacks[0].Source)
	assert.Equal(t, "Chat User", feedbacks[0].CustomerName)
}

func TestEngineInvalidRatingReprompts(t *testing.T) {
	e, db := newTestEngine(t)

	for _, input := range []string{"7", "abc", "0", ""} {
		next, reply := e.Step(context.Background(), FeedbackRating{}, input)
		assert.Equal(t, FeedbackRating{}, next, input)
		assert.Equal(t, replyInvalidRating, reply, input)
	}

	next, _ := e.Step(context.Background(), FeedbackRating{}, "4 stars")
	assert.Equal(t, FeedbackComment{Rating: 4}, next)

	var count int64
	db.Model(&models.Feedback{}).Count(&count)
	assert.Zero(t, count)
}

func TestEngineCancelKeyword(t *testing.T) {
	e, _ := newTestEngine(t)

	states := []State{
		BookingName{},
		BookingDate{Name: "Alice"},
		BookingTime{Name: "Alice", Date: "2024-06-01"},
		BookingTable{Name: "Alice", Date: "2024-06-01", Time: "19:00"},
		FeedbackRating{},
		FeedbackComment{Rating: 3},
	}
	for _, st := range states {
		next, reply := e.Step(context.Background(), st, "  Cancel ")
		assert.Equal(t, Idle{}, next, "%T", st)
		assert.Equal(t, replyCancelled, reply)
	}

	// di idle "cancel" hanya teks biasa
	next, reply := e.Step(context.Background(), Idle{}, "cancel")
	assert.Equal(t, Idle{}, next)
	assert.Equal(t, replyHelp, reply)
}

func TestEngineIdleKeywords(t *testing.T) {
	e, db := newTestEngine(t)
	testutil.SeedMenu(t, db, "A", 100)

	tests := []struct {
		input     string
		wantKind  StateKind
		wantReply string
	}{
		{"Can I REVIEW my booking?", KindFeedbackRating, replyAskRating},
		{"book", KindBookingName, replyAskName},
		{"Any vegan dishes?", KindIdle, replyVegan},
		{"show me the menu", KindIdle, replyMenu},
		{"opening hours?", KindIdle, replyHours},
		{"hello", KindIdle, replyHelp},
		{"what's popular?", KindIdle, "Here are our popular dishes:\n🍽️ A - ₹100\n\nTry them and rate your favorites! ⭐"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			next, reply := e.Step(context.Background(), Idle{}, tt.input)
			assert.Equal(t, tt.wantKind, next.Kind())
			assert.Equal(t, tt.wantReply, reply)
		})
	}
}

type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) ListBookableTables(context.Context, string) ([]services.TableView, error) {
	return nil, errBackendDown
}

func (failingBackend) CreateReservation(context.Context, services.ReservationInput) (*models.Reservation, error) {
	return nil, errBackendDown
}

func (failingBackend) SubmitFeedback(context.Context, services.FeedbackInput) (*models.Feedback, error) {
	return nil, errBackendDown
}

func (failingBackend) MenuWithRatings(context.Context) ([]services.MenuItemWithRating, error) {
	return nil, errBackendDown
}

func TestEngineBackendFailures(t *testing.T) {
	fb := failingBackend{}
	e := NewEngine(fb, fb, fb)
	ctx := context.Background()

	next, reply := e.Step(ctx, BookingTime{Name: "A", Date: "2024-06-01"}, "19:00")
	assert.Equal(t, Idle{}, next)
	assert.Equal(t, replyTablesFailed, reply)

	next, reply = e.Step(ctx, BookingTable{Name: "A", Date: "2024-06-01", Time: "19:00"}, "1")
	assert.Equal(t, Idle{}, next)
	assert.Equal(t, replyBookingFailed, reply)

	next, reply = e.Step(ctx, FeedbackComment{Rating: 4}, "nice")
	assert.Equal(t, Idle{}, next)
	assert.Equal(t, replyFeedbackFailed, reply)

	next, reply = e.Step(ctx, Idle{}, "recommend something")
	assert.Equal(t, Idle{}, next)
	assert.Equal(t, replyMenuFailed, reply)
}

func TestEngineEmptyMenu(t *testing.T) {
	e, _ := newTestEngine(t)
	_, reply := e.Step(context.Background(), Idle{}, "best dishes")
	assert.Equal(t, replyMenuFailed, reply)
}

func TestEngineEmptyName(t *testing.T) {
	e, _ := newTestEngine(t)
	next, reply := e.Step(context.Background(), BookingName{}, "   ")
	assert.Equal(t, BookingName{}, next)
	assert.Equal(t, replyNameRequired, reply)
}
