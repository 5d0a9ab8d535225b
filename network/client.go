package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/automoto/coffeeon/sequencer"
	"github.com/automoto/coffeeon/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// ProgressClient follows a remote progress relay over a necs WebSocket
// transport and exposes it as a sequencer.ProgressSource. Updates arrive on
// necs goroutines; Poll applies the latest one on the game tick.
// All shared fields are protected by mu.
type ProgressClient struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn
	lastSeq   uint64
	cancel    context.CancelFunc
	lost      chan error // signalled by OnDisconnect for the current connection

	updateCh chan messages.ProgressUpdate // size-1 buffered; latest wins

	source sequencer.StaticSource
	retry  time.Duration
	logger zerolog.Logger
}

func NewProgressClient() *ProgressClient {
	return &ProgressClient{
		state:    StateDisconnected,
		updateCh: make(chan messages.ProgressUpdate, 1),
		retry:    2 * time.Second,
		logger:   log.With().Str("component", "client").Logger(),
	}
}

// Connect dials url in a background goroutine and keeps reconnecting until
// Disconnect is called or ctx ends.
func (c *ProgressClient) Connect(ctx context.Context, url string) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	c.registerRoutes()

	go func() {
		for {
			err := c.run(ctx, url)
			if ctx.Err() != nil {
				return
			}
			c.setError(err)
			c.logger.Warn().Err(err).Dur("retry", c.retry).Msg("progress feed lost")
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.retry):
			}
			c.mu.Lock()
			c.state = StateConnecting
			c.mu.Unlock()
		}
	}()
}

// registerRoutes wires the necs router callbacks. The router is
// process-wide; Disconnect resets it.
func (c *ProgressClient) registerRoutes() {
	router.OnConnect(func(_ *router.NetworkClient) {
		c.logger.Info().Msg("connected to progress relay")
	})

	router.On(func(_ *router.NetworkClient, msg messages.ProgressUpdate) {
		c.push(msg.Clamped())
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		c.mu.Lock()
		lost := c.lost
		c.conn = nil
		if c.state == StateConnected {
			c.state = StateDisconnected
		}
		c.mu.Unlock()
		if lost != nil {
			select {
			case lost <- err:
			default:
			}
		}
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		c.logger.Warn().Err(err).Msg("relay error")
	})
}

// run holds one connection to url until it drops or ctx ends
func (c *ProgressClient) run(ctx context.Context, url string) error {
	lost := make(chan error, 1)
	c.mu.Lock()
	c.lost = lost
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, c.closeConn)
	defer stop()

	transport := transports.NewWsClientTransport(url)
	err := transport.Start(func(conn *websocket.Conn) {
		c.mu.Lock()
		c.conn = conn
		c.state = StateConnected
		c.lastSeq = 0
		c.mu.Unlock()
		if ctx.Err() != nil {
			_ = conn.CloseNow()
		}
	})
	if err != nil {
		return fmt.Errorf("progress relay: %w", err)
	}

	select {
	case err := <-lost:
		if err == nil {
			err = errors.New("progress relay closed the connection")
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *ProgressClient) closeConn() {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn != nil {
		_ = conn.CloseNow()
	}
}

func (c *ProgressClient) push(msg messages.ProgressUpdate) {
	c.mu.Lock()
	if msg.Seq != 0 && msg.Seq <= c.lastSeq {
		c.mu.Unlock()
		return
	}
	if msg.Seq != 0 {
		c.lastSeq = msg.Seq
	}
	c.mu.Unlock()

	select { // drain stale, push latest
	case <-c.updateCh:
	default:
	}
	select {
	case c.updateCh <- msg:
	default:
	}
}

// Poll applies the most recent update, if any, and reports whether one
// was pending. Non-blocking.
func (c *ProgressClient) Poll() bool {
	select {
	case msg := <-c.updateCh:
		c.source.Set(msg.Progress)
		return true
	default:
		return false
	}
}

// CurrentProgress implements sequencer.ProgressSource
func (c *ProgressClient) CurrentProgress() float64 { return c.source.CurrentProgress() }

// OnChange implements sequencer.ProgressSource
func (c *ProgressClient) OnChange(fn func(float64)) func() { return c.source.OnChange(fn) }

// Publish sends local progress to the relay, making this client a controller
func (c *ProgressClient) Publish(ctx context.Context, p float64) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errors.New("not connected")
	}

	payload, err := router.Serialize(messages.ProgressUpdate{Progress: p}.Clamped())
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, payload)
}

func (c *ProgressClient) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.state = StateDisconnected
	c.conn = nil
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *ProgressClient) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *ProgressClient) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *ProgressClient) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
