// Package server - пакет с циклом приема клиентских соединений
package server

import (
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/Kostushka/web_server/internal/config"
	"github.com/Kostushka/web_server/internal/connection"
	"github.com/Kostushka/web_server/internal/journal"
	"github.com/Kostushka/web_server/internal/log"
)

// Server - сервер, принимающий соединения на порту из конфигурации
type Server struct {
	config   *config.Data
	journal  *journal.Journal
	listener *net.TCPListener
	// семафор на число одновременно обрабатываемых соединений, nil - без ограничения
	sem    chan struct{}
	closed atomic.Bool
}

// New - создать сервер; соединения до вызова Serve не принимаются
func New(cfg *config.Data, j *journal.Journal) *Server {
	s := &Server{
		config:  cfg,
		journal: j,
	}
	if n := cfg.MaxConnections(); n > 0 {
		s.sem = make(chan struct{}, n)
	}

	return s
}

// Listen - открываем слушающий сокет на 0.0.0.0:port
func (s *Server) Listen() error {
	laddr := net.TCPAddr{
		IP:   net.IPv4zero,
		Port: s.config.Port(),
	}

	l, err := net.ListenTCP("tcp", &laddr)
	if err != nil {
		return err
	}
	s.listener = l

	log.Infof("запуск сервера с адресом %v на порту %d", laddr.IP, s.Addr().Port)

	return nil
}

// Addr - адрес слушающего сокета
func (s *Server) Addr() *net.TCPAddr {
	return s.listener.Addr().(*net.TCPAddr)
}

// ListenAndServe - открываем сокет и принимаем соединения
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}

	return s.Serve()
}

// Serve - принимаем соединения, пока сокет не закрыт через Close
func (s *Server) Serve() error {
	var delay time.Duration
	for {
		// слушаем сокетные соединения (запросы)
		conn, err := s.listener.AcceptTCP()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			// при повторяющихся ошибках (например, EMFILE) не крутим цикл вхолостую
			delay = nextAcceptDelay(delay)
			log.Errorf("ошибка приема соединения: %v; повтор через %v", err, delay)
			time.Sleep(delay)

			continue
		}
		delay = 0
		log.Infof("запрос на соединение от клиента %s принят", conn.RemoteAddr().String())

		s.acquire()
		// обрабатываем каждое клиентское соединение в отдельной горутине
		go func() {
			defer s.release()
			connection.New(conn, s.config, s.journal).ProcessingConn()
		}()
	}
}

// пауза перед повторным Accept после ошибки: от 5 мс, удваивается до 1 с
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

func nextAcceptDelay(d time.Duration) time.Duration {
	if d == 0 {
		return minAcceptDelay
	}
	d *= 2
	if d > maxAcceptDelay {
		return maxAcceptDelay
	}

	return d
}

// Close - закрываем слушающий сокет; уже принятые соединения дорабатывают сами
func (s *Server) Close() error {
	s.closed.Store(true)

	if s.listener == nil {
		return nil
	}

	return s.listener.Close()
}

// ждем свободного места, если число соединений ограничено
func (s *Server) acquire() {
	if s.sem != nil {
		s.sem <- struct{}{}
	}
}

func (s *Server) release() {
	if s.sem != nil {
		<-s.sem
	}
}
