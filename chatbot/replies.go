package chatbot

import (
	"strconv"
	"strings"
)

const (
	Greeting = "👋 Hi there! I'm your AI Concierge. How can I assist you today?"

	replyAskName        = "Let's book a table! What is your name?"
	replyNameRequired   = "Please tell me your name so I can book a table."
	replyAskDateFormat  = "Nice to meet you, %s! What date? (YYYY-MM-DD)"
	replyAskTime        = "What time? (e.g., 19:00)"
	replyChooseTable    = "Choose a table: "
	replyNoTables       = "⚠️ No tables available right now. Process cancelled."
	replyInvalidTable   = "Please enter a valid table number."
	replyBooked         = "🎉 Confirmed! See you then."
	replyBookingFailed  = "Error booking table. Please try again."
	replyAskRating      = "We'd love to hear from you! Please rate us from 1 to 5 stars. ⭐"
	replyInvalidRating  = "Please enter a number between 1 and 5."
	replyAskComment     = "Got it! Any comments or suggestions you'd like to share?"
	replyThanks         = "Thank you so much for your feedback! We truly appreciate it. 😊"
	replyFeedbackFailed = "Sorry, I couldn't save your feedback right now. Please try again later."
	replyVegan          = "Try our Mushroom Arancini! 🍄"
	replyMenu           = "Check out our Menu page for delicious options! 🍕"
	replyHours          = "We are open 11 AM - 11 PM daily."
	replyHelp           = "I can help you Book a Table 📅 or leave Feedback ⭐. Just ask!"
	replyMenuFailed     = "Sorry, I couldn't fetch our menu right now. Please try again later."
	replyCancelled      = "No problem, I've cancelled that. What else can I help you with?"
	replyTablesFailed   = "Sorry, I couldn't check our tables right now. Please try again later."
)

// nama customer untuk feedback dari chat
const chatCustomerName = "Chat User"

var (
	feedbackWords  = []string{"rate", "feedback", "review"}
	bookingWords   = []string{"book", "reserve"}
	recommendWords = []string{"special", "recommend", "popular", "best"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isCancel(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "cancel")
}

// leadingInt membaca bilangan bulat di awal teks: "4 stars" -> 4, "-2" -> -2, "abc" -> false
func leadingInt(text string) (int, bool) {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseTableNumber -> "Table 3", "table3", "3" semuanya 3
func parseTableNumber(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if len(text) >= 5 && strings.EqualFold(text[:5], "table") {
		text = text[5:]
	}
	return leadingInt(text)
}
