package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"studymate/internal/models"
	"studymate/internal/utils"
	"studymate/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades GET /ws?token= to a websocket and registers it with the
// notification hub. The token travels as a query parameter because browser
// websocket clients cannot set an Authorization header.
type WSHandler struct {
	Tokens interface {
		Verify(token string) (int64, error)
	}
	Users interface {
		GetByID(ctx context.Context, id int64) (*models.User, error)
	}
	Hub *ws.Hub
	Log *logrus.Logger
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	userID, err := h.Tokens.Verify(tokenStr)
	if err != nil {
		utils.Fail(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	user, err := h.Users.GetByID(r.Context(), userID)
	if err != nil || !user.IsActive {
		utils.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.WithError(err).Warn("ws: failed to upgrade connection")
		return
	}

	c := &ws.Connection{
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: user.ID,
	}
	h.Hub.Register(c)
	go c.StartWrite()

	// Read loop only watches for disconnect; clients do not send anything.
	go func() {
		defer func() {
			h.Hub.Unregister(c)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
