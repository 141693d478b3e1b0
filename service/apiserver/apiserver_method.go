package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common/rlog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventBufferSize is the number of the events kept for a slow websocket client
const EventBufferSize = 256

type ReqData struct {
	req   *JRPCRequest
	resCh chan *JRPCResponse
}

func decodeRequest(data []byte) (*JRPCRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var req JRPCRequest
	if err := dec.Decode(&req); err != nil {
		return nil, errors.WithStack(err)
	}
	return &req, nil
}

func (s *APIServer) request(req *JRPCRequest) *JRPCResponse {
	resCh := make(chan *JRPCResponse, 1)
	select {
	case s.reqCh <- &ReqData{req: req, resCh: resCh}:
	case <-s.closeCh:
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrServerClosed.Error(),
		}
	}
	return <-resCh
}

func (s *APIServer) handleHTTP(c echo.Context) error {
	defer c.Request().Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(c.Request().Body); err != nil {
		return err
	}
	req, err := decodeRequest(buf.Bytes())
	if err != nil {
		return c.JSON(http.StatusBadRequest, &JRPCResponse{
			JSONRPC: "2.0",
			Error:   ErrInvalidRequest.Error(),
		})
	}
	res := s.request(req)
	if res == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *APIServer) handleWebsocket(c echo.Context) error {
	Type := strings.ToLower(c.QueryParam("type"))
	switch Type {
	case "events":
		if s.events == nil {
			return c.NoContent(http.StatusNotFound)
		}
		ch, cancel := s.events.Subscribe(EventBufferSize)
		defer cancel()

		conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
		if err != nil {
			return err
		}
		defer conn.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return nil
				}
				if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
					return err
				}
				if err := conn.WriteJSON(e); err != nil {
					rlog.Debugf("event stream closed: %v", err)
					return nil
				}
			case <-doneCh:
				return nil
			}
		}
	default:
		conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
		if err != nil {
			return err
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return nil
			}
			var res *JRPCResponse
			if req, err := decodeRequest(data); err != nil {
				res = &JRPCResponse{
					JSONRPC: "2.0",
					Error:   ErrInvalidRequest.Error(),
				}
			} else {
				res = s.request(req)
			}
			if res != nil {
				if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
					return err
				}
				if err := conn.WriteJSON(res); err != nil {
					return err
				}
			}
		}
	}
}

// JRPC provides the json rpc feature as a SubName.FunctionName methods
func (s *APIServer) JRPC(SubName string) (*JRPCSub, error) {
	s.Lock()
	defer s.Unlock()

	if _, has := s.subMap[SubName]; has {
		return nil, errors.WithStack(ErrExistSubName)
	}
	js := NewJRPCSub()
	s.subMap[SubName] = js
	return js, nil
}

func (s *APIServer) handleJRPC(req *JRPCRequest) *JRPCResponse {
	ls := strings.SplitN(req.Method, ".", 2)
	if len(ls) != 2 {
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrInvalidMethod.Error(),
		}
	}

	s.Lock()
	sub, has := s.subMap[ls[0]]
	s.Unlock()
	if !has {
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrInvalidMethod.Error(),
		}
	}

	fn, has := sub.Get(ls[1])
	if !has {
		if req.ID == nil {
			return nil
		}
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrInvalidMethod.Error(),
		}
	}

	ret, err := fn(req.ID, NewArgument(req.Params))
	if req.ID == nil {
		return nil
	}
	res := &JRPCResponse{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
	}
	if err != nil {
		res.Error = errors.Cause(err).Error()
	} else {
		res.Result = ret
	}
	return res
}
