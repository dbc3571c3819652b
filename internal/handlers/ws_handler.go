package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Cari-app/cari-quizzies-sub001/internal/services"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

// WSHandler streams session navigation over a websocket. Scheduler-driven
// advances (loading bars, timers, level gauges) reach the client through
// this channel; the client may also answer and advance inline.
type WSHandler struct {
	BaseHandler
	player   services.PlayerService
	upgrader websocket.Upgrader
}

func NewWSHandler(player services.PlayerService, logger utils.Logger) *WSHandler {
	return &WSHandler{
		BaseHandler: NewBaseHandler(logger),
		player:      player,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and bridges the session's navigation
// events onto the socket.
// @Summary Session event stream
// @Tags sessions
// @Param id path string true "Session ID"
// @Router /api/v1/sessions/{id}/ws [get]
func (h *WSHandler) ServeWS(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.player.GetSession(c.Request.Context(), sessionID); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.LogError(c, err, "websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates, cancel := h.player.SubscribeNavigation(sessionID)
	defer cancel()

	send := make(chan outboundMessage, 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// Single writer goroutine; gorilla connections do not allow
	// concurrent writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}()

	// enqueue hands a message to the writer. Once the writer has exited
	// the message is dropped instead of blocking the caller forever.
	enqueue := func(msg outboundMessage) {
		select {
		case send <- msg:
		case <-writerDone:
			h.logger.Debug("Dropping websocket message, writer closed",
				"session_id", sessionID, "message_type", msg.Type)
		}
	}

	go func() {
		defer close(updatesDone)
		for {
			select {
			case result, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage{Type: "navigation", Payload: result}:
				case <-writerDone:
					h.logger.Debug("Dropping navigation event, writer closed",
						"session_id", sessionID)
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload services.AnswerRequest
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				enqueue(outboundMessage{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}})
				continue
			}
			session, err := h.player.RecordAnswer(c.Request.Context(), sessionID, &payload)
			if err != nil {
				enqueue(outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}})
				continue
			}
			enqueue(outboundMessage{Type: "answerRecorded", Payload: session})
		case "advance":
			var payload services.AdvanceRequest
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				enqueue(outboundMessage{Type: "error", Payload: errorPayload{Message: "invalid advance payload"}})
				continue
			}
			result, err := h.player.Advance(c.Request.Context(), sessionID, &payload)
			if err != nil {
				enqueue(outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}})
				continue
			}
			enqueue(outboundMessage{Type: "navigation", Payload: result})
		default:
			enqueue(outboundMessage{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}
