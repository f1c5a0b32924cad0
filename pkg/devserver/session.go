package devserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/observe"
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/woby"
)

// Session is one live connection. Its runtime and document are used only by
// the goroutine running serve.
type Session struct {
	ID string

	conn     *websocket.Conn
	cfg      Config
	logger   *slog.Logger
	rt       *reactive.Runtime
	doc      *dom.Document
	root     *woby.Root
	mutation *dom.MutationObserver
	differ   *Differ

	closeOnce sync.Once
}

// mountApp creates a runtime, builds the app and mounts it into the body.
func mountApp(cfg Config, logger *slog.Logger) (*reactive.Runtime, *dom.Document, *woby.Root, error) {
	var observers []reactive.Observer
	if cfg.Metrics != nil {
		observers = append(observers, cfg.Metrics)
	}
	if cfg.Observer != nil {
		observers = append(observers, cfg.Observer)
	}
	opts := []reactive.Option{reactive.WithLogger(logger)}
	if len(observers) > 0 {
		opts = append(opts, reactive.WithObserver(observe.Multi(observers...)))
	}
	rt := reactive.NewRuntime(append(opts, cfg.RuntimeOptions...)...)

	doc, root, err := cfg.App(rt)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("devserver: build app: %w", err)
	}
	if doc == nil {
		return nil, nil, nil, fmt.Errorf("devserver: app returned no document")
	}
	r, err := woby.Mount(rt, root, doc.Body())
	if err != nil {
		return nil, nil, nil, err
	}
	return rt, doc, r, nil
}

func newSession(cfg Config, conn *websocket.Conn) (*Session, error) {
	id := uuid.NewString()
	logger := cfg.Logger.With("session", id)

	rt, doc, root, err := mountApp(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:       id,
		conn:     conn,
		cfg:      cfg,
		logger:   logger,
		rt:       rt,
		doc:      doc,
		root:     root,
		mutation: dom.NewMutationObserver(doc),
		differ:   NewDiffer(),
	}, nil
}

// serve sends the initial snapshot and handles client messages until the
// connection fails or is closed.
func (s *Session) serve() {
	defer s.dispose()

	hello := s.differ.Snapshot(s.doc)
	hello.Session = s.ID
	if err := s.send([]Frame{hello}); err != nil {
		s.logger.Warn("initial snapshot failed", "error", err)
		return
	}

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warn("invalid client message", "error", err)
			continue
		}
		frames := s.handle(msg)
		if len(frames) == 0 {
			continue
		}
		if err := s.send(frames); err != nil {
			s.logger.Warn("write failed", "error", err)
			return
		}
	}
}

// handle applies one client message and returns the frames it produced.
func (s *Session) handle(msg ClientMessage) []Frame {
	switch msg.Type {
	case "event":
		target, ok := s.doc.NodeByID(msg.ID).(*dom.Element)
		if !ok || msg.Event == "" {
			s.logger.Debug("event target not found", "id", msg.ID, "event", msg.Event)
			return nil
		}
		err := s.rt.Batch(func() {
			target.DispatchEvent(dom.NewEvent(msg.Event, msg.Detail))
		})
		if err != nil {
			s.logger.Error("event flush failed", "event", msg.Event, "id", msg.ID, "error", err)
		}
	default:
		s.logger.Warn("unknown message type", "type", msg.Type)
		return nil
	}
	return s.differ.Diff(s.mutation.TakeRecords())
}

func (s *Session) send(frames []Frame) error {
	for _, f := range frames {
		if err := s.conn.WriteJSON(f); err != nil {
			return err
		}
	}
	if s.cfg.Metrics != nil {
		s.cfg.Metrics.FramesSent(len(frames))
	}
	return nil
}

// Close closes the connection. It is safe to call from any goroutine; the
// session goroutine then tears the tree down.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"), deadline)
		s.conn.Close()
	})
}

func (s *Session) dispose() {
	s.mutation.Disconnect()
	s.root.Dispose()
	s.conn.Close()
}
