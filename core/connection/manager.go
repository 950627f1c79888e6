package connection

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/goto/approvalflow/core/state"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/goto/approvalflow/pkg/metrics"
)

const (
	DefaultReconnectDelay   = 5 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultWriteTimeout     = 10 * time.Second

	pongMessage         = "pong"
	unknownMessageLabel = "unknown"
	eventBuffer         = 64
)

var ErrManagerClosed = errors.New("connection manager is closed")

type Config struct {
	URL              string        `mapstructure:"url" yaml:"url" default:"ws://localhost:8000" validate:"required"`
	UserID           int           `mapstructure:"user_id" yaml:"user_id"`
	Role             string        `mapstructure:"role" yaml:"role" default:"employee"`
	ReconnectDelay   time.Duration `mapstructure:"reconnect_delay" yaml:"reconnect_delay" default:"5s"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout" yaml:"handshake_timeout" default:"10s"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" default:"10s"`
}

// Endpoint builds the per-user socket address. http and https base URLs are mapped to ws and wss.
func (c Config) Endpoint() (string, error) {
	u, err := url.Parse(strings.TrimRight(c.URL, "/"))
	if err != nil {
		return "", fmt.Errorf("parsing realtime url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported realtime url scheme %q", u.Scheme)
	}
	u.Path = fmt.Sprintf("%s/ws/%d", u.Path, c.UserID)
	q := u.Query()
	if c.Role != "" {
		q.Set("role", c.Role)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type EventKind string

const (
	EventOpened  EventKind = "opened"
	EventClosed  EventKind = "closed"
	EventErrored EventKind = "errored"
	EventMessage EventKind = "message"
)

type Event struct {
	Kind    EventKind
	Message domain.InboundMessage
	Err     error
}

type activityRecorder interface {
	Record(message, category string) domain.ActivityEvent
}

type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. It is replaceable so tests can drive the reconnect timer.
type AfterFunc func(d time.Duration, f func()) Timer

func timeAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manager keeps one real-time connection open, reconnecting after a fixed delay for as long as it
// is not closed. At most one reconnect timer is outstanding.
type Manager struct {
	config    Config
	endpoint  string
	dialer    *websocket.Dialer
	parser    *Parser
	state     *state.State
	activity  activityRecorder
	logger    log.Logger
	metrics   *metrics.Metrics
	afterFunc AfterFunc

	events chan Event
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	conn    *websocket.Conn
	timer   Timer
	started bool
	closed  bool
}

type Deps struct {
	State     *state.State
	Activity  activityRecorder
	Logger    log.Logger
	Metrics   *metrics.Metrics
	AfterFunc AfterFunc
}

func NewManager(config Config, deps Deps) (*Manager, error) {
	if config.ReconnectDelay <= 0 {
		config.ReconnectDelay = DefaultReconnectDelay
	}
	if config.HandshakeTimeout <= 0 {
		config.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultWriteTimeout
	}
	endpoint, err := config.Endpoint()
	if err != nil {
		return nil, err
	}
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		config:    config,
		endpoint:  endpoint,
		dialer:    &websocket.Dialer{HandshakeTimeout: config.HandshakeTimeout},
		parser:    parser,
		state:     deps.State,
		activity:  deps.Activity,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		afterFunc: deps.AfterFunc,
		events:    make(chan Event, eventBuffer),
		done:      make(chan struct{}),
	}
	if m.state == nil {
		m.state = state.New()
	}
	if m.logger == nil {
		m.logger = log.NewNoop()
	}
	if m.afterFunc == nil {
		m.afterFunc = timeAfterFunc
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m, nil
}

// Events is closed once the manager is closed and every pending event has been handed over.
func (m *Manager) Events() <-chan Event {
	return m.events
}

func (m *Manager) Endpoint() string {
	return m.endpoint
}

// Start opens the first connection in the background.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}
	if m.started {
		return nil
	}
	m.started = true
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.connect()
	}()
	return nil
}

// Close cancels the reconnect timer, closes the socket and waits for the reader to finish. It is
// safe to call more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()

	close(m.done)
	m.cancel()
	var err error
	if conn != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		err = conn.Close()
	}
	m.wg.Wait()
	m.setConnection(domain.ConnectionStateDisconnected, nil)
	close(m.events)
	return err
}

func (m *Manager) connect() {
	m.setConnection(domain.ConnectionStateConnecting, nil)

	conn, _, err := m.dialer.DialContext(m.ctx, m.endpoint, nil)
	if err != nil {
		if m.isClosed() {
			return
		}
		m.handleError(fmt.Errorf("dialing %s: %w", m.endpoint, err))
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		conn.Close()
		return
	}
	m.conn = conn
	m.wg.Add(1)
	m.mu.Unlock()

	m.setConnection(domain.ConnectionStateConnected, nil)
	m.record("Real-time connection established", domain.ActivityCategoryApproved)
	m.logger.Info(m.ctx, "real-time connection opened", "endpoint", m.endpoint)
	m.emit(Event{Kind: EventOpened})

	go func() {
		defer m.wg.Done()
		m.read(conn)
	}()
}

func (m *Manager) read(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			m.mu.Lock()
			if m.conn == conn {
				m.conn = nil
			}
			closed := m.closed
			m.mu.Unlock()
			conn.Close()
			if closed {
				return
			}

			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				m.handleClose(closeErr)
			} else {
				m.handleError(fmt.Errorf("reading message: %w", err))
			}
			return
		}
		m.handleMessage(conn, data)
	}
}

func (m *Manager) handleMessage(conn *websocket.Conn, data []byte) {
	msg, err := m.parser.Parse(data)
	if err != nil {
		m.logger.Warn(m.ctx, "dropping malformed real-time message", "error", err, "payload", string(data))
		m.metrics.MessageDropped()
		return
	}

	switch msg.(type) {
	case *domain.PingMessage:
		m.metrics.MessageReceived(msg.Type())
		if err := m.writePong(conn); err != nil {
			m.logger.Warn(m.ctx, "failed to answer ping", "error", err)
		}
	case *domain.UnknownMessage:
		// tags of unknown messages come from the peer and must not become label values
		m.metrics.MessageReceived(unknownMessageLabel)
		m.logger.Debug(m.ctx, "unknown real-time message type", "type", msg.Type())
	default:
		m.metrics.MessageReceived(msg.Type())
	}
	m.emit(Event{Kind: EventMessage, Message: msg})
}

// writePong is only called from the reader goroutine, the single writer of data frames. Close may run
// concurrently through WriteControl, which gorilla allows.
func (m *Manager) writePong(conn *websocket.Conn) error {
	if err := conn.SetWriteDeadline(time.Now().Add(m.config.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, []byte(pongMessage))
}

func (m *Manager) handleClose(closeErr *websocket.CloseError) {
	m.setConnection(domain.ConnectionStateReconnecting, nil)
	m.record("Real-time connection lost", domain.ActivityCategoryRejected)
	m.logger.Info(m.ctx, "real-time connection closed", "code", closeErr.Code, "reason", closeErr.Text)
	m.scheduleReconnect()
	m.emit(Event{Kind: EventClosed, Err: closeErr})
}

func (m *Manager) handleError(err error) {
	m.setConnection(domain.ConnectionStateDisconnected, err)
	m.record("Real-time connection error", domain.ActivityCategoryRejected)
	m.logger.Warn(m.ctx, "real-time connection failed", "error", err)
	m.scheduleReconnect()
	m.emit(Event{Kind: EventErrored, Err: err})
}

func (m *Manager) scheduleReconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.metrics.ReconnectScheduled()
	m.timer = m.afterFunc(m.config.ReconnectDelay, m.reconnect)
}

func (m *Manager) reconnect() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	m.wg.Add(1)
	m.mu.Unlock()

	defer m.wg.Done()
	m.connect()
}

func (m *Manager) emit(e Event) {
	select {
	case m.events <- e:
	case <-m.done:
	}
}

func (m *Manager) record(message, category string) {
	if m.activity != nil {
		m.activity.Record(message, category)
	}
}

func (m *Manager) setConnection(c domain.ConnectionState, err error) {
	m.state.SetConnection(c, err)
	m.metrics.ConnectionState(string(c),
		string(domain.ConnectionStateDisconnected),
		string(domain.ConnectionStateConnecting),
		string(domain.ConnectionStateConnected),
		string(domain.ConnectionStateReconnecting),
	)
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
