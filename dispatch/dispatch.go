package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Request is the invoke-by-name envelope: the wire name of a handler plus
// its attribute payload.
type Request struct {
	Function string          `json:"function"`
	Data     json.RawMessage `json:"data"`
}

// HandlerFunc consumes the raw attribute payload and produces the result
// value serialized back to the invoker.
type HandlerFunc func(ctx context.Context, data json.RawMessage) (interface{}, error)

// Dispatcher routes invocations to handlers by wire name.
type Dispatcher struct {
	handlers map[string]HandlerFunc
}

func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]HandlerFunc),
	}
}

func (d *Dispatcher) Register(name string, h HandlerFunc) {
	d.handlers[name] = h
}

// Handle routes a single invocation. Unknown names and handler errors fail
// the invocation.
func (d *Dispatcher) Handle(ctx context.Context, req Request) (interface{}, error) {
	h, ok := d.handlers[req.Function]
	if !ok {
		log.Warnf("Unknown function %q", req.Function)
		return nil, fmt.Errorf("Unknown function %q", req.Function)
	}
	log.Infof("Dispatch: %s", req.Function)
	return h(ctx, req.Data)
}

// Decode unmarshals the attribute payload into the handler's request type.
// An absent payload decodes into the zero value.
func Decode(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("Could not decode payload: %s", err)
	}
	return nil
}
