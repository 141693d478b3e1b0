package apiserver

import (
	"context"
	"sync"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/meverselabs/boosto/common/rlog"
	"github.com/meverselabs/boosto/core/types"
)

// WorkerCount is the number of the goroutines that handle the requests
const WorkerCount = 16

// EventSource provides the committed events
type EventSource interface {
	Subscribe(size int) (<-chan *types.Event, func())
}

// APIServer provides json rpc and the event stream of the chain
type APIServer struct {
	sync.Mutex
	e       *echo.Echo
	subMap  map[string]*JRPCSub
	events  EventSource
	reqCh   chan *ReqData
	closeCh chan struct{}
	once    sync.Once
}

// NewAPIServer returns a APIServer
func NewAPIServer(events EventSource) *APIServer {
	s := &APIServer{
		e:       echo.New(),
		subMap:  map[string]*JRPCSub{},
		events:  events,
		reqCh:   make(chan *ReqData),
		closeCh: make(chan struct{}),
	}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	s.e.POST("/api/endpoints/http", s.handleHTTP)
	s.e.GET("/api/endpoints/websocket", s.handleWebsocket)

	for i := 0; i < WorkerCount; i++ {
		go func() {
			for {
				select {
				case r := <-s.reqCh:
					r.resCh <- s.handleJRPC(r.req)
				case <-s.closeCh:
					return
				}
			}
		}()
	}
	return s
}

// Name returns the name of the service
func (s *APIServer) Name() string {
	return "boosto.apiserver"
}

// Handler returns the http handler of the endpoints
func (s *APIServer) Handler() *echo.Echo {
	return s.e
}

// Run starts web service of the apiserver
func (s *APIServer) Run(BindAddress string) error {
	rlog.Infof("APIServer listen %v", BindAddress)
	return s.e.Start(BindAddress)
}

// Shutdown stops the web service and the workers
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.once.Do(func() {
		close(s.closeCh)
	})
	return s.e.Shutdown(ctx)
}
