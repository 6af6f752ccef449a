package kds

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/resto-lite/models"
)

// Event types
const (
	EventTicketCreate  = "ticket_create"
	EventTicketDone    = "ticket_done"
	EventCatalogUpdate = "catalog_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub menampung semua layar dapur yang terhubung. Feed ini display-only:
// pesan masuk dari client diabaikan.
type KDSHub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient -> menambahkan connection ke set
func RegisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = struct{}{}
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

// BroadcastTicketCreate -> ticket baru masuk ke antrian dapur
func BroadcastTicketCreate(ticket models.KitchenTicket) {
	broadcast(Message{
		Event: EventTicketCreate,
		Data:  ticket,
	})
}

// BroadcastTicketDone -> ticket selesai dimasak
func BroadcastTicketDone(ticket models.KitchenTicket) {
	broadcast(Message{
		Event: EventTicketDone,
		Data:  ticket,
	})
}

// BroadcastCatalogUpdate -> catalog berubah, layar menu perlu refresh
func BroadcastCatalogUpdate(catalog []models.MenuItem) {
	broadcast(Message{
		Event: EventCatalogUpdate,
		Data:  catalog,
	})
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range kdsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
		}
	}
}
