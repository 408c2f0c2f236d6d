package chatbot

import "fmt"

// StateKind -> nama state yang dipakai di wire/snapshot
type StateKind string

const (
	KindIdle            StateKind = "idle"
	KindBookingName     StateKind = "booking_name"
	KindBookingDate     StateKind = "booking_date"
	KindBookingTime     StateKind = "booking_time"
	KindBookingTable    StateKind = "booking_table"
	KindFeedbackRating  StateKind = "feedback_rating"
	KindFeedbackComment StateKind = "feedback_comment"
)

// State adalah posisi percakapan. Setiap state hanya membawa draft yang memang
// sudah terkumpul, jadi tidak ada field "setengah terisi".
type State interface {
	Kind() StateKind
}

type Idle struct{}

type BookingName struct{}

type BookingDate struct {
	Name string
}

type BookingTime struct {
	Name string
	Date string
}

type BookingTable struct {
	Name string
	Date string
	Time string
}

type FeedbackRating struct{}

type FeedbackComment struct {
	Rating int
}

func (Idle) Kind() StateKind            { return KindIdle }
func (BookingName) Kind() StateKind     { return KindBookingName }
func (BookingDate) Kind() StateKind     { return KindBookingDate }
func (BookingTime) Kind() StateKind     { return KindBookingTime }
func (BookingTable) Kind() StateKind    { return KindBookingTable }
func (FeedbackRating) Kind() StateKind  { return KindFeedbackRating }
func (FeedbackComment) Kind() StateKind { return KindFeedbackComment }

// StateRecord -> bentuk datar dari State untuk disimpan (JSON)
type StateRecord struct {
	Kind   StateKind `json:"kind"`
	Name   string    `json:"name,omitempty"`
	Date   string    `json:"date,omitempty"`
	Time   string    `json:"time,omitempty"`
	Rating int       `json:"rating,omitempty"`
}

func EncodeState(s State) StateRecord {
	switch st := s.(type) {
	case BookingDate:
		return StateRecord{Kind: KindBookingDate, Name: st.Name}
	case BookingTime:
		return StateRecord{Kind: KindBookingTime, Name: st.Name, Date: st.Date}
	case BookingTable:
		return StateRecord{Kind: KindBookingTable, Name: st.Name, Date: st.Date, Time: st.Time}
	case FeedbackComment:
		return StateRecord{Kind: KindFeedbackComment, Rating: st.Rating}
	case nil:
		return StateRecord{Kind: KindIdle}
	default:
		return StateRecord{Kind: s.Kind()}
	}
}

func DecodeState(r StateRecord) (State, error) {
	switch r.Kind {
	case KindIdle, "":
		return Idle{}, nil
	case KindBookingName:
		return BookingName{}, nil
	case KindBookingDate:
		return BookingDate{Name: r.Name}, nil
	case KindBookingTime:
		return BookingTime{Name: r.Name, Date: r.Date}, nil
	case KindBookingTable:
		return BookingTable{Name: r.Name, Date: r.Date, Time: r.Time}, nil
	case KindFeedbackRating:
		return FeedbackRating{}, nil
	case KindFeedbackComment:
		return FeedbackComment{Rating: r.Rating}, nil
	default:
		return nil, fmt.Errorf("unknown conversation state %q", r.Kind)
	}
}
