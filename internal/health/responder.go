package health

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ContentTypeJSON is the only header the responder sets
const ContentTypeJSON = "application/json"

// fallbackBody is served if the payload cannot be encoded, which only a
// broken encoder could cause.
const fallbackBody = `{"ok":true,"ts":0,"requestId":null,"sourceIp":null,"path":null}`

// Payload is the JSON document carried in the response body. Field order is
// the wire order.
type Payload struct {
	OK        bool    `json:"ok"`
	TS        int64   `json:"ts"`
	RequestID *string `json:"requestId"`
	SourceIP  *string `json:"sourceIp"`
	Path      *string `json:"path"`
}

// Response is the proxy-integration response handed back to the router
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Clock reports the current wall-clock time
type Clock func() time.Time

// Option configures a Responder
type Option func(*Responder)

// WithClock overrides the time source
func WithClock(clock Clock) Option {
	return func(r *Responder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithLogger sets the logger used for per-response debug entries
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Responder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Responder maps one request and invocation context to one health response.
// It holds no mutable state and is safe for concurrent use.
type Responder struct {
	clock  Clock
	logger *logrus.Logger
}

// NewResponder creates a responder. Without options it reads time.Now and
// logs nowhere.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{clock: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logrus.New()
		r.logger.SetOutput(io.Discard)
	}
	return r
}

// Respond builds the health response. It cannot fail.
func (r *Responder) Respond(req Request, ictx InvocationContext) Response {
	payload := Payload{
		OK:        true,
		TS:        r.clock().Unix(),
		RequestID: ictx.RequestID,
		SourceIP:  req.SourceIP(),
		Path:      req.Path(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		r.logger.WithError(err).Error("Failed to encode health payload")
		body = []byte(fallbackBody)
	}

	r.logger.WithFields(logrus.Fields{
		"ts":         payload.TS,
		"request_id": deref(payload.RequestID),
		"source_ip":  deref(payload.SourceIP),
		"path":       deref(payload.Path),
	}).Debug("Health response built")

	return Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
		Body:       string(body),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
