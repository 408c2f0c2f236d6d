package chatbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

// TableBooker -> bagian AvailabilityService yang dipakai percakapan
type TableBooker interface {
	ListBookableTables(ctx context.Context, date string) ([]services.TableView, error)
	CreateReservation(ctx context.Context, input services.ReservationInput) (*models.Reservation, error)
}

type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, input services.FeedbackInput) (*models.Feedback, error)
}

type MenuSource interface {
	MenuWithRatings(ctx context.Context) ([]services.MenuItemWithRating, error)
}

// Engine menjalankan satu langkah percakapan. Engine tidak menyimpan state;
// state lama masuk, state baru dan balasan keluar.
type Engine struct {
	Tables   TableBooker
	Feedback FeedbackSubmitter
	Menu     MenuSource
}

func NewEngine(tables TableBooker, feedback FeedbackSubmitter, menu MenuSource) *Engine {
	return &Engine{
		Tables:   tables,
		Feedback: feedback,
		Menu:     menu,
	}
}

// Step memproses satu input user. Kegagalan backend tidak pernah dikembalikan sebagai
// error: user mendapat permintaan maaf dan percakapan kembali ke Idle.
func (e *Engine) Step(ctx context.Context, state State, input string) (State, string) {
	if state == nil {
		state = Idle{}
	}
	text := strings.TrimSpace(input)

	if state.Kind() != KindIdle && isCancel(text) {
		return Idle{}, replyCancelled
	}

	switch st := state.(type) {
	case BookingName:
		if text == "" {
			return st, replyNameRequired
		}
		return BookingDate{Name: text}, fmt.Sprintf(replyAskDateFormat, text)

	case BookingDate:
		return BookingTime{Name: st.Name, Date: text}, replyAskTime

	case BookingTime:
		return e.offerTables(ctx, st, text)

	case BookingTable:
		return e.book(ctx, st, text)

	case FeedbackRating:
		rating, ok := leadingInt(text)
		if !ok || rating < 1 || rating > 5 {
			return st, replyInvalidRating
		}
		return FeedbackComment{Rating: rating}, replyAskComment

	case FeedbackComment:
		return e.submitFeedback(ctx, st, text)

	default:
		return e.idle(ctx, text)
	}
}

func (e *Engine) idle(ctx context.Context, text string) (State, string) {
	lc := strings.ToLower(text)

	switch {
	case containsAny(lc, feedbackWords):
		return FeedbackRating{}, replyAskRating
	case containsAny(lc, bookingWords):
		return BookingName{}, replyAskName
	case containsAny(lc, recommendWords):
		return Idle{}, e.recommend(ctx)
	case strings.Contains(lc, "vegan"):
		return Idle{}, replyVegan
	case strings.Contains(lc, "menu"):
		return Idle{}, replyMenu
	case strings.Contains(lc, "hours"):
		return Idle{}, replyHours
	default:
		return Idle{}, replyHelp
	}
}

func (e *Engine) offerTables(ctx context.Context, st BookingTime, text string) (State, string) {
	tables, err := e.Tables.ListBookableTables(ctx, st.Date)
	if err != nil {
		utils.ErrorLogger.Errorf("chatbot: failed to list tables for %s: %v", st.Date, err)
		return Idle{}, replyTablesFailed
	}
	if len(tables) == 0 {
		// tidak lanjut ke pilih meja: tidak ada yang bisa dipilih, percakapan selesai
		return Idle{}, replyNoTables
	}

	numbers := make([]string, 0, len(tables))
	for _, t := range tables {
		numbers = append(numbers, strconv.Itoa(t.TableNumber))
	}
	next := BookingTable{Name: st.Name, Date: st.Date, Time: text}
	return next, replyChooseTable + strings.Join(numbers, ", ")
}

func (e *Engine) book(ctx context.Context, st BookingTable, text string) (State, string) {
	number, ok := parseTableNumber(text)
	if !ok {
		return st, replyInvalidTable
	}

	reservation, err := e.Tables.CreateReservation(ctx, services.ReservationInput{
		CustomerName: st.Name,
		TableNumber:  number,
		Date:         st.Date,
		Time:         st.Time,
	})
	if err != nil {
		utils.InfoLogger.WithFields(logrus.Fields{
			"table_number": number,
			"date":         st.Date,
			"kind":         services.KindOf(err),
		}).Warn("chatbot booking failed")
		return Idle{}, replyBookingFailed
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"table_number":   reservation.TableNumber,
	}).Info("chatbot booking confirmed")
	return Idle{}, replyBooked
}

func (e *Engine) submitFeedback(ctx context.Context, st FeedbackComment, text string) (State, string) {
	_, err := e.Feedback.SubmitFeedback(ctx, services.FeedbackInput{
		CustomerName: chatCustomerName,
		Rating:       st.Rating,
		Comment:      text,
		Source:       models.FeedbackSourceChatbot,
	})
	if err != nil {
		utils.ErrorLogger.Errorf("chatbot: failed to submit feedback: %v", err)
		return Idle{}, replyFeedbackFailed
	}
	return Idle{}, replyThanks
}

func (e *Engine) recommend(ctx context.Context) string {
	items, err := e.Menu.MenuWithRatings(ctx)
	if err != nil {
		utils.ErrorLogger.Errorf("chatbot: failed to load menu: %v", err)
		return replyMenuFailed
	}
	if len(items) == 0 {
		return replyMenuFailed
	}
	return FormatRecommendations(Recommend(items, 3))
}
