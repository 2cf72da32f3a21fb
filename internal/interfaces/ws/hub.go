// Package ws notifica a los tableros conectados cuando cambia un recurso
// (pedidos sobre todo: el mostrador y el taller miran la misma lista).
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

// Event mensaje publicado a los clientes conectados.
type Event struct {
	Resource string `json:"resource"` // "pedidos" | "productos" | "caja" | ...
	Action   string `json:"action"`   // "created" | "updated" | "deleted" | "collected"
	ID       string `json:"id"`
}

// Hub mantiene las conexiones websocket activas y reparte eventos.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mutex      sync.Mutex
	log        zerolog.Logger
}

// NewHub construye el hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte),
		log:        log,
	}
}

// Run atiende registros, bajas y difusión. Correr en su propia goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			h.log.Debug().Msg("cliente websocket conectado")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish difunde un evento a todos los clientes conectados. No bloquea al
// caller más allá del encolado.
func (h *Hub) Publish(resource, action, id string) {
	payload, err := json.Marshal(Event{Resource: resource, Action: action, ID: id})
	if err != nil {
		h.log.Error().Err(err).Msg("serializar evento websocket")
		return
	}
	h.broadcast <- payload
}

// Handler devuelve el handler de conexión para montar en la ruta /ws.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.register <- conn
		defer func() { h.unregister <- conn }()
		// Lectura solo para detectar el cierre; no se aceptan comandos.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
