package network

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/game"
)

// session owns one connection and the world behind it
// Only run touches the world; the reader hands messages over through inbox
type session struct {
	id    uint64
	conn  *websocket.Conn
	game  *game.Game
	cfg   *Config
	clock *engine.FrameClock
	inbox chan ClientMessage
	log   zerolog.Logger

	onReceive func()
	onDrop    func()
}

func (s *session) readLoop(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug().Err(err).Msg("read failed")
			}
			return
		}
		m, err := DecodeClient(raw)
		if err != nil {
			s.onDrop()
			s.log.Debug().Err(err).Msg("client message dropped")
			continue
		}
		s.onReceive()
		select {
		case s.inbox <- m:
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-s.inbox:
			Apply(s.game, m)
		case <-ticker.C:
			s.game.Tick(s.clock.Step())
			if err := s.write(FrameMessage{Type: TypeFrame, Frame: s.game.Frame()}); err != nil {
				return err
			}
		}
	}
}

func (s *session) write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
