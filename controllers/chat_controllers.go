package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-concierge/chatbot"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

type ChatController struct {
	Manager *chatbot.Manager
}

func NewChatController(manager *chatbot.Manager) *ChatController {
	return &ChatController{Manager: manager}
}

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// SendMessage -> satu giliran; session_id kosong membuat session baru
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	turn, err := cc.Manager.Send(c.Request.Context(), strings.TrimSpace(req.SessionID), req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reply", turn)
}

func (cc *ChatController) GetTranscript(c *gin.Context) {
	lines, err := cc.Manager.Transcript(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Transcript", lines)
}

type chatFrame struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply,omitempty"`
	State     string `json:"state,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ChatSocket -> satu session per socket. Frame teks masuk, balasan JSON keluar.
func (cc *ChatController) ChatSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("Chat upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	ctx := c.Request.Context()
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		sessionID = chatbot.NewSessionID()
	}

	if err := ws.WriteJSON(chatFrame{SessionID: sessionID, Reply: chatbot.Greeting, State: string(chatbot.KindIdle)}); err != nil {
		return
	}

	for {
		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.ErrorLogger.Errorf("Chat socket %s closed: %v", sessionID, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		frame := chatFrame{SessionID: sessionID}
		turn, err := cc.Manager.Send(ctx, sessionID, string(data))
		if err != nil {
			if services.KindOf(err) != services.KindValidation {
				utils.ErrorLogger.Errorf("Chat socket %s turn failed: %v", sessionID, err)
			}
			frame.Error = errorMessage(err)
		} else {
			frame.Reply = turn.Reply
			frame.State = string(turn.State)
		}

		if err := ws.WriteJSON(frame); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func errorMessage(err error) string {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "something went wrong, please try again"
}
