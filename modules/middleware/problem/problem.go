package problem

import (
	"encoding/json"
	"net/http"
)

// Problem is an RFC7807 Problem Details document. Error responses carry a
// status and a message; internal causes stay out of the body.
type Problem struct {
	Type          *string         `json:"type,omitempty"`
	Title         string          `json:"title"`
	Status        int             `json:"status"`
	Detail        *string         `json:"detail,omitempty"`
	Instance      *string         `json:"instance,omitempty"`
	InvalidParams *[]InvalidParam `json:"invalidParams,omitempty"`
	TraceID       *string         `json:"traceId,omitempty"`
}

type InvalidParam struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type Option func(*Problem)

func New(opts ...Option) *Problem {
	p := &Problem{
		Type:   strPtr("about:blank"),
		Title:  http.StatusText(http.StatusInternalServerError),
		Status: http.StatusInternalServerError,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.Title == "" {
		if t := http.StatusText(p.Status); t != "" {
			p.Title = t
		} else {
			p.Title = "Unknown Error"
		}
	}
	return p
}

func Write(w http.ResponseWriter, p *Problem) {
	if p == nil {
		p = Internal("server error")
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func WithStatus(status int) Option {
	return func(p *Problem) { p.Status = status }
}

func WithTitle(title string) Option {
	return func(p *Problem) { p.Title = title }
}

func WithDetail(detail string) Option {
	return func(p *Problem) { p.Detail = strPtr(detail) }
}

func WithInstance(instance string) Option {
	return func(p *Problem) { p.Instance = strPtr(instance) }
}

func WithTraceID(traceID string) Option {
	return func(p *Problem) { p.TraceID = strPtr(traceID) }
}

func WithInvalidParam(name, reason string) Option {
	return func(p *Problem) {
		if p.InvalidParams == nil {
			s := []InvalidParam{{Name: name, Reason: reason}}
			p.InvalidParams = &s
			return
		}
		s := append(*p.InvalidParams, InvalidParam{Name: name, Reason: reason})
		p.InvalidParams = &s
	}
}

func statusProblem(status int, detail string, opts ...Option) *Problem {
	base := []Option{
		WithTitle(http.StatusText(status)),
		WithStatus(status),
		WithDetail(detail),
	}
	return New(append(base, opts...)...)
}

func BadRequest(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusBadRequest, detail, opts...)
}

func Unauthorized(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusUnauthorized, detail, opts...)
}

func Forbidden(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusForbidden, detail, opts...)
}

func NotFound(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusNotFound, detail, opts...)
}

func Conflict(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusConflict, detail, opts...)
}

func Validation(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusUnprocessableEntity, detail, opts...)
}

func TooManyRequests(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusTooManyRequests, detail, opts...)
}

func Internal(detail string, opts ...Option) *Problem {
	return statusProblem(http.StatusInternalServerError, detail, opts...)
}

func strPtr(s string) *string { return &s }
