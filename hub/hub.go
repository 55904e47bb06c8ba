// Package hub pushes order events to connected dashboards over websockets.
package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/utils"
)

const (
	EventOrderCreated   = "order_created"
	EventOrderStatus    = "order_status"
	EventRiderAssigned  = "rider_assigned"
	EventOrderDelivered = "order_delivered"
	EventPartnerUpdate  = "partner_update"
)

// writeWait bounds a single write so a stalled client cannot hold up the
// request that published the event.
const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Event is routed to admins, to the staff of BranchID and to the rider
// PartnerID. Empty routing fields reach admins only.
type Event struct {
	Name      string
	BranchID  string
	PartnerID string
	Payload   interface{}
}

// Conn is the part of *websocket.Conn the hub needs.
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Subscriber describes who is on the other end of a connection.
type Subscriber struct {
	Role      string
	BranchID  string
	PartnerID string
}

func (s Subscriber) wants(e Event) bool {
	switch s.Role {
	case models.RoleAdmin:
		return true
	case models.RoleBranch:
		return s.BranchID != "" && s.BranchID == e.BranchID
	case models.RoleDelivery:
		return s.PartnerID != "" && s.PartnerID == e.PartnerID
	}
	return false
}

type Hub struct {
	clients map[Conn]Subscriber
	mutex   sync.Mutex
}

func New() *Hub {
	return &Hub{clients: make(map[Conn]Subscriber)}
}

func (h *Hub) Register(conn Conn, sub Subscriber) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = sub
	utils.InfoLogger.Printf("live client connected (role=%s branch=%s)", sub.Role, sub.BranchID)
}

func (h *Hub) Unregister(conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish sends e to every interested client. Clients that fail a write are
// dropped; they reconnect and refetch.
func (h *Hub) Publish(e Event) {
	data, err := json.Marshal(Message{Event: e.Name, Data: e.Payload})
	if err != nil {
		utils.ErrorLogger.Errorf("marshal %s event: %v", e.Name, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, sub := range h.clients {
		if !sub.wants(e) {
			continue
		}
		if err := write(conn, data); err != nil {
			utils.ErrorLogger.Warnf("drop live client (role=%s): %v", sub.Role, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func write(conn Conn, data []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
