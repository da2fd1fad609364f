package health

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Request is the subset of an HTTP API (payload v2) or Function URL event the
// responder reads. Every field is optional.
type Request struct {
	RawPath        *string         `json:"rawPath,omitempty"`
	RequestContext *RequestContext `json:"requestContext,omitempty"`
}

// RequestContext mirrors the event's requestContext object
type RequestContext struct {
	HTTP *HTTPContext `json:"http,omitempty"`
}

// HTTPContext mirrors requestContext.http
type HTTPContext struct {
	SourceIP *string `json:"sourceIp,omitempty"`
}

// InvocationContext carries platform metadata about the current invocation
type InvocationContext struct {
	RequestID *string
}

// NewRequest builds a Request from plain values. Empty strings are absent.
func NewRequest(rawPath, sourceIP string) Request {
	req := Request{RawPath: optional(rawPath)}
	if ip := optional(sourceIP); ip != nil {
		req.RequestContext = &RequestContext{HTTP: &HTTPContext{SourceIP: ip}}
	}
	return req
}

// NewInvocationContext builds an InvocationContext. An empty id is absent.
func NewInvocationContext(requestID string) InvocationContext {
	return InvocationContext{RequestID: optional(requestID)}
}

// FromHTTPAPIRequest converts a typed API Gateway HTTP API event
func FromHTTPAPIRequest(event events.APIGatewayV2HTTPRequest) Request {
	return NewRequest(event.RawPath, event.RequestContext.HTTP.SourceIP)
}

// FromFunctionURLRequest converts a typed Lambda Function URL event
func FromFunctionURLRequest(event events.LambdaFunctionURLRequest) Request {
	return NewRequest(event.RawPath, event.RequestContext.HTTP.SourceIP)
}

// ParseRequest decodes a raw event. It never fails: anything that is not
// where it is expected, or not of the expected type, is left nil.
func ParseRequest(raw []byte) Request {
	var req Request
	_ = req.UnmarshalJSON(raw)
	return req
}

// Path returns rawPath or nil
func (r Request) Path() *string {
	return r.RawPath
}

// SourceIP returns requestContext.http.sourceIp or nil when any segment is missing
func (r Request) SourceIP() *string {
	if r.RequestContext == nil || r.RequestContext.HTTP == nil {
		return nil
	}
	return r.RequestContext.HTTP.SourceIP
}

// UnmarshalJSON decodes leniently so the type can be handed to the Lambda
// runtime directly without a malformed event failing the invocation.
func (r *Request) UnmarshalJSON(data []byte) error {
	*r = Request{}

	fields := objectFields(data)
	r.RawPath = stringField(fields, "rawPath")

	requestContext := objectFields(fields["requestContext"])
	if requestContext == nil {
		return nil
	}
	r.RequestContext = &RequestContext{}

	httpContext := objectFields(requestContext["http"])
	if httpContext == nil {
		return nil
	}
	r.RequestContext.HTTP = &HTTPContext{SourceIP: stringField(httpContext, "sourceIp")}

	return nil
}

// objectFields returns the members of a JSON object, or nil for anything else
func objectFields(data json.RawMessage) map[string]json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func stringField(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
