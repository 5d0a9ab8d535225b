package api

import (
	"sync"

	"github.com/automoto/coffeeon/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Peer is a connected relay client. *router.NetworkClient satisfies it.
type Peer interface {
	SendMessage(msg any) error
}

// Hub relays progress updates from any connected peer to every other peer.
// New peers receive the latest accepted update on connect.
type Hub struct {
	mu     sync.RWMutex
	peers  map[Peer]struct{}
	latest messages.ProgressUpdate
	seq    uint64
	logger zerolog.Logger

	transport *transports.WsServerTransport
}

func NewHub() *Hub {
	return &Hub{
		peers:  make(map[Peer]struct{}),
		logger: log.With().Str("component", "hub").Logger(),
	}
}

// Start registers the router callbacks and serves the relay on port.
// Blocks until the transport stops. The necs router is process-wide, so
// one hub per process.
func (h *Hub) Start(port uint) error {
	router.OnConnect(func(client *router.NetworkClient) {
		h.logger.Info().Str("client", client.Id()).Msg("peer connected")
		h.Join(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		h.logger.Info().Str("client", client.Id()).AnErr("reason", err).Msg("peer disconnected")
		h.Leave(client)
	})

	router.On(func(client *router.NetworkClient, msg messages.ProgressUpdate) {
		h.Broadcast(client, msg)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		h.logger.Warn().Str("client", client.Id()).Err(err).Msg("peer error")
	})

	h.transport = transports.NewWsServerTransport(port, "", nil)
	h.logger.Info().Uint("port", port).Msg("progress relay listening")
	return h.transport.Start()
}

// Peers returns the number of connected peers
func (h *Hub) Peers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Latest returns the last accepted update
func (h *Hub) Latest() messages.ProgressUpdate {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Join adds p and catches it up with the latest update, if any
func (h *Hub) Join(p Peer) {
	h.mu.Lock()
	h.peers[p] = struct{}{}
	latest, seq := h.latest, h.seq
	h.mu.Unlock()

	if seq == 0 {
		return
	}
	if err := p.SendMessage(latest); err != nil {
		h.logger.Warn().Err(err).Msg("catch-up failed")
		h.Leave(p)
	}
}

func (h *Hub) Leave(p Peer) {
	h.mu.Lock()
	delete(h.peers, p)
	h.mu.Unlock()
}

// Broadcast stamps msg with the next sequence number and sends it to every
// peer except from. Peers whose send fails are dropped.
func (h *Hub) Broadcast(from Peer, msg messages.ProgressUpdate) {
	h.mu.Lock()
	h.seq++
	msg = msg.Clamped()
	msg.Seq = h.seq
	h.latest = msg
	targets := make([]Peer, 0, len(h.peers))
	for p := range h.peers {
		if p != from {
			targets = append(targets, p)
		}
	}
	h.mu.Unlock()

	for _, p := range targets {
		if err := p.SendMessage(msg); err != nil {
			h.logger.Warn().Err(err).Msg("dropping peer")
			h.Leave(p)
		}
	}
}
