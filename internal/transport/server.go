// Package transport is the ambient TCP surface around an engine.Engine. It
// is a thin command/query forwarder: every request it accepts is parsed
// off the wire and handed, one at a time, to a single dispatch goroutine
// that calls straight into the Engine — the Engine itself is never touched
// concurrently, matching its single-actor design (SPEC_FULL.md §5). Run
// accepts connections, the worker pool reads frames off them (answering
// malformed ones itself), and the dispatch goroutine writes the replies;
// the worker pool never calls the Engine directly.
package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"depthbook/internal/engine"
	"depthbook/internal/wire"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"
)

const (
	maxFrameSize       = 4 * 1024
	defaultNWorkers    = 10
	defaultReadTimeout = 5 * time.Second
)

// dispatched is a parsed request, tagged with the connection it arrived on
// so the single dispatch goroutine can write the reply without a session
// lookup.
type dispatched struct {
	conn net.Conn
	req  wire.Request
}

// Server accepts depthbook wire connections and serializes every command
// against one engine.Engine.
type Server struct {
	address  string
	port     int
	eng      *engine.Engine
	pool     *WorkerPool
	incoming chan dispatched
	cancel   context.CancelFunc
	log      zerolog.Logger
}

func New(address string, port int, eng *engine.Engine, log zerolog.Logger) *Server {
	return &Server{
		address:  address,
		port:     port,
		eng:      eng,
		pool:     NewWorkerPool(defaultNWorkers, log),
		incoming: make(chan dispatched, 1),
		log:      log,
	}
}

func (s *Server) Shutdown() {
	s.log.Info().Msg("server shutting down")
	if s.cancel != nil {
		s.cancel()
	}
}

// Run blocks accepting connections until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	defer s.Shutdown()

	ctx, s.cancel = context.WithCancel(ctx)
	t, ctx := tomb.WithContext(ctx)

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", fmt.Sprintf("%s:%d", s.address, s.port))
	if err != nil {
		s.log.Error().Err(err).Msg("unable to start listener")
		return err
	}
	// Closing the listener once ctx is done unblocks Accept below.
	go func() {
		<-ctx.Done()
		if err := listener.Close(); err != nil {
			s.log.Error().Err(err).Msg("unable to close listener")
		}
	}()

	t.Go(func() error {
		s.pool.Setup(t, s.handleConnection)
		return nil
	})

	t.Go(func() error {
		return s.dispatchLoop(t)
	})

	s.log.Info().Str("address", listener.Addr().String()).Msg("server listening")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
					s.log.Error().Err(err).Msg("error accepting client")
					continue
				}
			}
			sessionID := uuid.New().String()
			s.log.Info().Str("session_id", sessionID).Str("remote", conn.RemoteAddr().String()).Msg("client connected")
			s.pool.AddTask(conn)
		}
	}
}

// dispatchLoop is the single goroutine allowed to call into s.eng.
func (s *Server) dispatchLoop(t *tomb.Tomb) error {
	for {
		select {
		case <-t.Dying():
			return nil
		case d := <-s.incoming:
			reply := s.handle(d.req)
			if _, err := d.conn.Write(reply); err != nil {
				s.log.Error().Err(err).Str("remote", d.conn.RemoteAddr().String()).Msg("failed writing reply")
			}
		}
	}
}

func (s *Server) handle(req wire.Request) []byte {
	switch m := req.(type) {
	case wire.NewOrderMessage:
		ok := s.eng.AddOrder(m.SymbolID, m.OrderID, m.Px, m.Qty, m.Side)
		return wire.Ack{OK: ok}.Serialize()
	case wire.CancelOrderMessage:
		ok := s.eng.RemoveOrder(m.OrderID)
		return wire.Ack{OK: ok}.Serialize()
	case wire.ModifyOrderMessage:
		ok := s.eng.ModifyOrder(m.OrderID, m.Px, m.Qty)
		return wire.Ack{OK: ok}.Serialize()
	case wire.QueryTopMessage:
		levels, _ := s.eng.QueryTop(m.SymbolID, int(m.Depth), m.Side)
		return wire.BookSnapshot{Levels: levels}.Serialize()
	default:
		return wire.ErrorMsg{Reason: "unrecognized request"}.Serialize()
	}
}

// handleConnection reads frames off one connection until it closes or t
// dies, pushing each parsed request onto s.incoming for the dispatch
// goroutine. It never calls the Engine itself.
func (s *Server) handleConnection(t *tomb.Tomb, conn net.Conn) error {
	defer func() {
		if err := conn.Close(); err != nil {
			s.log.Error().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("error closing connection")
		}
	}()

	buf := make([]byte, maxFrameSize)
	for {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		if err := conn.SetReadDeadline(time.Now().Add(defaultReadTimeout)); err != nil {
			s.log.Error().Err(err).Msg("failed setting read deadline")
			return nil
		}

		n, err := conn.Read(buf)
		if err != nil {
			s.log.Debug().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("connection closed")
			return nil
		}

		req, err := wire.ParseRequest(buf[:n])
		if err != nil {
			s.log.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("malformed frame")
			if _, werr := conn.Write(wire.ErrorMsg{Reason: err.Error()}.Serialize()); werr != nil {
				return nil
			}
			continue
		}

		select {
		case s.incoming <- dispatched{conn: conn, req: req}:
		case <-t.Dying():
			return nil
		}
	}
}
