package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"impostor/internal/app"
	"impostor/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

var errMissingPayload = errors.New("missing payload")

// Client is the display of one device. It implements app.Presenter by
// pushing every render to the browser.
type Client struct {
	ctx      context.Context
	conn     *websocket.Conn
	table    *app.Table
	deviceID string
	send     chan []byte
	done     chan struct{}
	logger   *slog.Logger
	mu       sync.Mutex
	closed   bool
}

var _ app.Presenter = (*Client)(nil)

// NewClient creates a new WebSocket client
func NewClient(ctx context.Context, conn *websocket.Conn, table *app.Table, deviceID string, logger *slog.Logger) *Client {
	return &Client{
		ctx:      ctx,
		conn:     conn,
		table:    table,
		deviceID: deviceID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger.With("table", table.GetCode(), "device", deviceID),
	}
}

// Send queues a message for the write pump
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn("send buffer full, message dropped")
		return nil
	}
}

// Close closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// ShowScreen implements app.Presenter
func (c *Client) ShowScreen(screen string) error {
	return c.Send(NewServerMessage(MsgScreen, &ScreenPayload{Screen: screen}))
}

// RenderSetup implements app.Presenter
func (c *Client) RenderSetup(view domain.SetupView) error {
	return c.Send(NewServerMessage(MsgSetup, view))
}

// RenderTurn implements app.Presenter
func (c *Client) RenderTurn(view domain.TurnView) error {
	return c.Send(NewServerMessage(MsgTurn, view))
}

// RenderReveal implements app.Presenter
func (c *Client) RenderReveal(view domain.RoleView) error {
	return c.Send(NewServerMessage(MsgRevealCard, view))
}

// RenderAdvanceReady implements app.Presenter
func (c *Client) RenderAdvanceReady(view domain.TurnView) error {
	return c.Send(NewServerMessage(MsgAdvanceReady, view))
}

// RenderVoting implements app.Presenter
func (c *Client) RenderVoting(view domain.VotingView) error {
	return c.Send(NewServerMessage(MsgVoting, view))
}

// RenderResults implements app.Presenter
func (c *Client) RenderResults(view domain.ResultView) error {
	return c.Send(NewServerMessage(MsgResults, view))
}

// ShowValidation implements app.Presenter
func (c *Client) ShowValidation(code, message string) error {
	return c.Send(NewServerMessage(MsgValidation, &ErrorPayload{Code: code, Message: message}))
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.table.Detach(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches an incoming message to the table. Refused
// intents have already been shown to the device as a validation message.
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	var err error
	switch msg.Type {
	case MsgChooseCategory:
		var p ChooseCategoryPayload
		if err = decodePayload(msg.Payload, &p); err == nil {
			err = c.table.ChooseCategory(p.Category)
		}
	case MsgChoosePlayerCount:
		var p ChoosePlayerCountPayload
		if err = decodePayload(msg.Payload, &p); err == nil {
			err = c.table.ChoosePlayerCount(p.Count)
		}
	case MsgAddPlayer:
		var p AddPlayerPayload
		if err = decodePayload(msg.Payload, &p); err == nil {
			err = c.table.AddPlayer(c.ctx, p.Name)
		}
	case MsgRemovePlayer:
		var p RemovePlayerPayload
		if err = decodePayload(msg.Payload, &p); err == nil {
			err = c.table.RemovePlayer(c.ctx, p.Index)
		}
	case MsgStartRound:
		err = c.table.Start()
	case MsgReveal:
		err = c.table.RequestReveal()
	case MsgAdvance:
		err = c.table.RequestAdvance()
	case MsgOpenVoting:
		err = c.table.OpenVoting()
	case MsgCastVote:
		var p CastVotePayload
		if err = decodePayload(msg.Payload, &p); err == nil {
			err = c.table.CastVote(p.VoterID, p.SuspectID)
		}
	case MsgShowResults:
		err = c.table.ShowResults()
	case MsgReplay:
		err = c.table.Replay(c.ctx)
	case MsgPing:
		c.sendPong()
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
	case errors.Is(err, errMissingPayload), errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
	default:
		c.logger.Debug("intent refused", "type", msg.Type, "error", err)
	}
}

// sendConnected sends the connected message to the client
func (c *Client) sendConnected() {
	payload := &ConnectedPayload{
		DeviceID:  c.deviceID,
		TableCode: c.table.GetCode(),
		State:     c.table.Snapshot(),
	}

	c.Send(NewServerMessage(MsgConnected, payload))
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	payload := &ErrorPayload{
		Code:    code,
		Message: message,
	}

	c.Send(NewServerMessage(MsgError, payload))
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	c.Send(NewServerMessage(MsgPong, nil))
}

func decodePayload(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errMissingPayload
	}
	return json.Unmarshal(raw, v)
}
