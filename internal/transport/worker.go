package transport

import (
	"net"

	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"
)

const taskChanSize = 100

// WorkerFunction handles one accepted connection.
type WorkerFunction = func(t *tomb.Tomb, conn net.Conn) error

// WorkerPool runs a fixed number of goroutines pulling connections off a
// shared channel. Unlike the teacher's worker pool, which spun up a new
// goroutine per task inside a busy select loop, this starts exactly n
// long-lived workers once and lets them loop internally — the busy loop
// burned a CPU core spinning on an empty default case whenever the pool was
// below capacity.
type WorkerPool struct {
	n     int
	tasks chan net.Conn
	log   zerolog.Logger
}

func NewWorkerPool(size int, log zerolog.Logger) *WorkerPool {
	return &WorkerPool{
		n:     size,
		tasks: make(chan net.Conn, taskChanSize),
		log:   log,
	}
}

// AddTask queues a connection for the next free worker.
func (pool *WorkerPool) AddTask(conn net.Conn) {
	pool.tasks <- conn
}

// Setup starts the pool's workers under t and blocks until t is dying.
func (pool *WorkerPool) Setup(t *tomb.Tomb, work WorkerFunction) {
	pool.log.Info().Int("workers", pool.n).Msg("starting worker pool")
	for i := 0; i < pool.n; i++ {
		t.Go(func() error {
			return pool.worker(t, work)
		})
	}
	<-t.Dying()
}

func (pool *WorkerPool) worker(t *tomb.Tomb, work WorkerFunction) error {
	for {
		select {
		case <-t.Dying():
			return nil
		case conn := <-pool.tasks:
			if err := work(t, conn); err != nil {
				pool.log.Error().Err(err).Msg("worker task failed")
			}
		}
	}
}
