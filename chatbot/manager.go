package chatbot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

// MaxTranscriptLines -> transcript dipotong ke baris terbaru
const MaxTranscriptLines = 200

// Turn -> hasil satu giliran percakapan
type Turn struct {
	SessionID string    `json:"session_id"`
	Reply     string    `json:"reply"`
	State     StateKind `json:"state"`
}

// Manager memegang banyak percakapan (satu per session id). Giliran untuk session yang
// sama dijalankan berurutan; session berbeda berjalan paralel.
type Manager struct {
	store       SessionStore
	engine      *Engine
	typingDelay time.Duration
	now         func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewManager(store SessionStore, engine *Engine, typingDelay time.Duration) *Manager {
	return &Manager{
		store:       store,
		engine:      engine,
		typingDelay: typingDelay,
		now:         time.Now,
		locks:       make(map[string]*sessionLock),
	}
}

func NewSessionID() string {
	return uuid.NewString()
}

// Send menjalankan satu giliran. sessionID kosong membuat session baru.
// Jika ctx selesai saat "mengetik", snapshot tidak berubah dan ctx.Err() dikembalikan.
func (m *Manager) Send(ctx context.Context, sessionID, text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, &services.ServiceError{Kind: services.KindValidation, Message: "message is required"}
	}
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	unlock := m.lock(sessionID)
	defer unlock()

	session, err := m.load(ctx, sessionID)
	if err != nil {
		return Turn{}, err
	}
	m.appendLine(session, SenderUser, text)

	if m.typingDelay > 0 {
		timer := time.NewTimer(m.typingDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Turn{}, ctx.Err()
		case <-timer.C:
		}
	}

	state, err := DecodeState(session.State)
	if err != nil {
		utils.ErrorLogger.Errorf("chatbot: session %s has bad state, resetting: %v", sessionID, err)
		state = Idle{}
	}

	next, reply := m.engine.Step(ctx, state, text)
	m.appendLine(session, SenderBot, reply)
	session.State = EncodeState(next)
	session.UpdatedAt = m.now()

	if err := m.store.Save(ctx, session); err != nil {
		return Turn{}, &services.ServiceError{Kind: services.KindUnavailable, Message: "failed to save chat session", Err: err}
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"from":       state.Kind(),
		"to":         next.Kind(),
	}).Debug("chat turn")

	return Turn{SessionID: sessionID, Reply: reply, State: next.Kind()}, nil
}

// Transcript -> NotFound untuk session yang belum ada
func (m *Manager) Transcript(ctx context.Context, sessionID string) ([]Line, error) {
	session, err := m.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, &services.ServiceError{Kind: services.KindNotFound, Message: "chat session " + sessionID + " not found"}
		}
		return nil, &services.ServiceError{Kind: services.KindUnavailable, Message: "failed to load chat session", Err: err}
	}
	return session.Transcript, nil
}

// load -> session baru diawali dengan sapaan bot
func (m *Manager) load(ctx context.Context, sessionID string) (*Session, error) {
	session, err := m.store.Load(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, &services.ServiceError{Kind: services.KindUnavailable, Message: "failed to load chat session", Err: err}
	}

	session = &Session{
		ID:    sessionID,
		State: EncodeState(Idle{}),
	}
	m.appendLine(session, SenderBot, Greeting)
	return session, nil
}

func (m *Manager) appendLine(session *Session, sender, text string) {
	session.Transcript = append(session.Transcript, Line{Sender: sender, Text: text, At: m.now()})
	if over := len(session.Transcript) - MaxTranscriptLines; over > 0 {
		session.Transcript = append([]Line(nil), session.Transcript[over:]...)
	}
}

func (m *Manager) lock(sessionID string) func() {
	m.mu.Lock()
	l, ok := m.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		m.locks[sessionID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, sessionID)
		}
		m.mu.Unlock()
	}
}
