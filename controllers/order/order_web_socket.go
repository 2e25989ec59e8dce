package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Mdken1/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type orderEvent struct {
	Event string        `json:"event"`
	Order *models.Order `json:"order"`
}

// OrderWebSocket streams order lifecycle events (created, status changed) to
// connected back-office clients.
// GET /api/ws/orders
func OrderWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastOrderEvent(event string, order *models.Order) {
	data, err := json.Marshal(orderEvent{Event: event, Order: order})
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
