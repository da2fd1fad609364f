package lambda

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"health-responder/internal/health"
)

// HandlerFunc is the signature handed to the Lambda runtime. The event stays
// raw so that no payload shape can fail decoding before the responder runs.
type HandlerFunc func(ctx context.Context, event json.RawMessage) (health.Response, error)

// NewHandler binds a responder to the Lambda invocation model
func NewHandler(responder *health.Responder, logger *logrus.Logger) HandlerFunc {
	if logger == nil {
		logger = logrus.New()
	}

	return func(ctx context.Context, event json.RawMessage) (health.Response, error) {
		req := health.ParseRequest(event)
		ictx := InvocationContextFrom(ctx)

		resp := responder.Respond(req, ictx)

		logger.WithFields(logrus.Fields{
			"request_id":    stringOrEmpty(ictx.RequestID),
			"path":          stringOrEmpty(req.Path()),
			"source_ip":     stringOrEmpty(req.SourceIP()),
			"status_code":   resp.StatusCode,
			"function_name": lambdacontext.FunctionName,
		}).Info("Health check served")

		return resp, nil
	}
}

// Invoke implements the runtime's raw Handler interface. Taking the payload
// bytes directly keeps malformed JSON from being rejected before the
// responder sees it.
func (f HandlerFunc) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	resp, err := f(ctx, json.RawMessage(payload))
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}

// InvocationContextFrom reads the invocation request ID the runtime stores on
// ctx. Outside Lambda the ID is absent.
func InvocationContextFrom(ctx context.Context) health.InvocationContext {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || lc == nil {
		return health.InvocationContext{}
	}
	return health.NewInvocationContext(lc.AwsRequestID)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
