package openapi

import (
	"fmt"
	"net/http"
	"sync"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"gitlab.com/zlyzol/settlemath/internal/calculator"
	"gitlab.com/zlyzol/settlemath/internal/models"
)

const (
	wsSubscribe   = "subscribe"
	wsUnsubscribe = "unsubscribe"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsResponse answers one frame. Frames with op "subscribe" also start a
// stream of responses with an empty id, one per recorded calculation.
type wsResponse struct {
	ID          interface{}         `json:"id,omitempty"`
	Calculation *models.Calculation `json:"calculation,omitempty"`
	Error       string              `json:"error,omitempty"`
}

type wsConn struct {
	mux  sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) send(resp wsResponse) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.conn.WriteJSON(resp)
}

// (GET /v1/ws)
func (h *Handlers) GetWs(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.Err(err).Msg("failed to upgrade websocket")
		return nil
	}
	logger := h.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()
	logger.Debug().Msg("websocket connected")
	ws := &wsConn{conn: conn}
	var listener *calculator.Listener
	defer func() {
		if listener != nil {
			h.calc.Unsubscribe(listener)
		}
		conn.Close()
		logger.Debug().Msg("websocket closed")
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket read failed")
			}
			return nil
		}
		js, err := simplejson.NewJson(msg)
		if err != nil {
			if err := ws.send(wsResponse{Error: "invalid frame: " + err.Error()}); err != nil {
				return nil
			}
			continue
		}
		resp := wsResponse{ID: js.Get("id").Interface()}
		op, err := js.Get("op").String()
		switch {
		case err != nil || op == "":
			resp.Error = "frame has no op"
		case op == wsSubscribe:
			if listener == nil {
				listener = h.calc.Subscribe()
				go forward(ws, listener)
			}
		case op == wsUnsubscribe:
			if listener != nil {
				h.calc.Unsubscribe(listener)
				listener = nil
			}
		default:
			args, err := frameArgs(js.Get("args"))
			if err != nil {
				resp.Error = err.Error()
				break
			}
			calc, err := h.calc.Calculate(op, args)
			resp.Calculation = calc
			if err != nil {
				resp.Error = err.Error()
			}
		}
		if err := ws.send(resp); err != nil {
			logger.Warn().Err(err).Msg("websocket write failed")
			return nil
		}
	}
}

func forward(ws *wsConn, listener *calculator.Listener) {
	for calc := range listener.C {
		calc := calc
		if err := ws.send(wsResponse{Calculation: &calc}); err != nil {
			return
		}
	}
}

// frameArgs flattens the args object, numbers keep their literal text.
func frameArgs(js *simplejson.Json) (calculator.Args, error) {
	if js.Interface() == nil {
		return calculator.Args{}, nil
	}
	m, err := js.Map()
	if err != nil {
		return nil, errors.New("args must be an object")
	}
	args := make(calculator.Args, len(m))
	for k, v := range m {
		switch v := v.(type) {
		case string:
			args[k] = v
		case fmt.Stringer:
			args[k] = v.String()
		default:
			return nil, errors.Errorf("args.%s must be a string or a number", k)
		}
	}
	return args, nil
}
