package inspect

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// ScheduleEvent is the socket.io event snapshots are emitted under.
const ScheduleEvent = "schedule"

// Publisher delivers snapshots to whoever is watching.
type Publisher interface {
	Publish(ctx context.Context, s Snapshot) error
	Close() error
}

// Options configure Dial.
type Options struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// SocketIOPublisher emits snapshots over a socket.io connection.
type SocketIOPublisher struct {
	io *socket.Socket
}

// Dial connects to a socket.io viewer and waits for the handshake.
func Dial(ctx context.Context, o Options) (*SocketIOPublisher, error) {
	logger := ctxlog.FromContext(ctx).With("component", "inspect", "url", o.URL)
	logger.Debug("Connecting to viewer...")

	parsedURL, err := url.Parse(o.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("viewer URL %q must include scheme and host", o.URL)
	}
	timeout := o.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	if o.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	hs := newHandshake()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(o.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to viewer", "sid", io.Id())
		hs.settle(nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		hs.settle(connectError(errs))
	})

	io.Connect()

	select {
	case err := <-hs.done:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &SocketIOPublisher{io: io}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// handshake records the first outcome of a connection attempt. Later
// outcomes are dropped so event handlers never block.
type handshake struct {
	once sync.Once
	done chan error
}

func newHandshake() *handshake {
	return &handshake{done: make(chan error, 1)}
}

func (h *handshake) settle(err error) {
	h.once.Do(func() { h.done <- err })
}

// connectError turns the arguments of a connect_error event into an error.
func connectError(args []any) error {
	if len(args) == 0 {
		return errors.New("connect_error without details")
	}
	if err, ok := args[0].(error); ok && err != nil {
		return err
	}
	return fmt.Errorf("%v", args[0])
}

// Publish emits s as a ScheduleEvent.
func (p *SocketIOPublisher) Publish(ctx context.Context, s Snapshot) error {
	if !p.io.Connected() {
		return fmt.Errorf("viewer connection is not established")
	}
	ctxlog.FromContext(ctx).Debug("Publishing schedule snapshot.", "frame", s.Frame, "entries", len(s.Schedule))
	p.io.Emit(ScheduleEvent, s)
	return nil
}

// Close disconnects from the viewer.
func (p *SocketIOPublisher) Close() error {
	p.io.Disconnect()
	return nil
}
