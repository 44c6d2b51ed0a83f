// Package service exposes the renderers over NATS request/reply.
//
// A request on "<prefix>.chart" or "<prefix>.gauge" carries a JSON body and
// is answered with the encoded image. Failures are answered with an empty
// body and the error text in the Flo-Error header.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/chart"
	"github.com/gogpu/flo/encode"
	"github.com/gogpu/flo/gauge"
	"github.com/gogpu/flo/snapshot"
	"github.com/gogpu/gg"
	"github.com/nats-io/nats.go"
)

// DefaultPrefix is the subject prefix used when none is configured.
const DefaultPrefix = "flo.render"

// ErrorHeader carries the failure text of a rejected request.
const ErrorHeader = "Flo-Error"

// Default image size when a request leaves it unset.
const (
	DefaultChartWidth  = 300
	DefaultChartHeight = 250
	DefaultGaugeSize   = 230
)

// ErrRemote wraps a failure reported by the service.
var ErrRemote = errors.New("service: remote render failed")

// ChartRequest is the JSON body of a chart request. Absent sizes take the
// defaults; sizes that are present are used as given and must be positive.
type ChartRequest struct {
	Points     []int  `json:"points"`
	StartColor string `json:"start_color,omitempty"`
	EndColor   string `json:"end_color,omitempty"`
	Width      *int   `json:"width,omitempty"`
	Height     *int   `json:"height,omitempty"`
	Format     string `json:"format,omitempty"`
}

// GaugeRequest is the JSON body of a gauge request. An absent capacity is
// DefaultCapacity; a present one must be positive.
type GaugeRequest struct {
	Counter       int    `json:"counter"`
	Capacity      *int   `json:"capacity,omitempty"`
	OutlineColor  string `json:"outline_color,omitempty"`
	FillColor     string `json:"fill_color,omitempty"`
	CounterPolicy string `json:"counter_policy,omitempty"`
	Width         *int   `json:"width,omitempty"`
	Height        *int   `json:"height,omitempty"`
	Format        string `json:"format,omitempty"`
}

// Option configures a Service.
type Option func(*Service)

// WithPrefix sets the subject prefix.
func WithPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithQueue subscribes through a queue group so several instances share load.
func WithQueue(group string) Option {
	return func(s *Service) {
		s.queue = group
	}
}

// Service answers render requests on a NATS connection.
type Service struct {
	nc     *nats.Conn
	prefix string
	queue  string

	mu   sync.Mutex
	subs []*nats.Subscription
}

// New creates a service on nc. Call Start to begin serving.
func New(nc *nats.Conn, opts ...Option) *Service {
	s := &Service{nc: nc, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChartSubject returns the subject chart requests are served on.
func (s *Service) ChartSubject() string { return s.prefix + ".chart" }

// GaugeSubject returns the subject gauge requests are served on.
func (s *Service) GaugeSubject() string { return s.prefix + ".gauge" }

// Start subscribes to both subjects. Starting twice is an error.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs != nil {
		return errors.New("service: already started")
	}

	handlers := map[string]func([]byte) ([]byte, error){
		s.ChartSubject(): renderChart,
		s.GaugeSubject(): renderGauge,
	}
	for subject, render := range handlers {
		sub, err := s.nc.QueueSubscribe(subject, s.queue, s.handler(subject, render))
		if err != nil {
			s.unsubscribeLocked()
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		s.subs = append(s.subs, sub)
	}
	if err := s.nc.Flush(); err != nil {
		s.unsubscribeLocked()
		return fmt.Errorf("flushing subscriptions: %w", err)
	}
	flo.Logger().Info("service: started", "chart", s.ChartSubject(), "gauge", s.GaugeSubject())
	return nil
}

// Stop drains the subscriptions. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribeLocked()
}

func (s *Service) unsubscribeLocked() {
	for _, sub := range s.subs {
		_ = sub.Drain()
	}
	s.subs = nil
}

func (s *Service) handler(subject string, render func([]byte) ([]byte, error)) nats.MsgHandler {
	return func(msg *nats.Msg) {
		if msg.Reply == "" {
			return
		}
		reply := nats.NewMsg(msg.Reply)
		data, err := render(msg.Data)
		if err != nil {
			flo.Logger().Warn("service: render failed", "subject", subject, "err", err)
			reply.Header.Set(ErrorHeader, err.Error())
		} else {
			reply.Data = data
		}
		if err := msg.RespondMsg(reply); err != nil {
			flo.Logger().Warn("service: reply failed", "subject", subject, "err", err)
		}
	}
}

func renderChart(body []byte) ([]byte, error) {
	var req ChartRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decoding chart request: %w", err)
	}
	in := chart.DefaultInput()
	in.Points = req.Points
	if err := parseColor(req.StartColor, &in.StartColor); err != nil {
		return nil, err
	}
	if err := parseColor(req.EndColor, &in.EndColor); err != nil {
		return nil, err
	}
	f, err := encode.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	size := snapshot.Size{
		Width:  valueOr(req.Width, DefaultChartWidth),
		Height: valueOr(req.Height, DefaultChartHeight),
	}
	return snapshot.Chart(in, size, f)
}

func renderGauge(body []byte) ([]byte, error) {
	var req GaugeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decoding gauge request: %w", err)
	}
	in := gauge.DefaultInput()
	in.Counter = req.Counter
	in.Capacity = valueOr(req.Capacity, gauge.DefaultCapacity)
	if err := parseColor(req.OutlineColor, &in.OutlineColor); err != nil {
		return nil, err
	}
	if err := parseColor(req.FillColor, &in.FillColor); err != nil {
		return nil, err
	}
	policy, err := gauge.ParseCounterPolicy(req.CounterPolicy)
	if err != nil {
		return nil, err
	}
	f, err := encode.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	size := snapshot.Size{
		Width:  valueOr(req.Width, DefaultGaugeSize),
		Height: valueOr(req.Height, DefaultGaugeSize),
	}
	return snapshot.Gauge(in, size, f, gauge.WithCounterPolicy(policy))
}

// RequestChart asks a running service for a chart image.
func RequestChart(ctx context.Context, nc *nats.Conn, prefix string, req ChartRequest) ([]byte, error) {
	return request(ctx, nc, subject(prefix, "chart"), req)
}

// RequestGauge asks a running service for a gauge image.
func RequestGauge(ctx context.Context, nc *nats.Conn, prefix string, req GaugeRequest) ([]byte, error) {
	return request(ctx, nc, subject(prefix, "gauge"), req)
}

func request(ctx context.Context, nc *nats.Conn, subj string, req any) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	msg, err := nc.RequestWithContext(ctx, subj, body)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", subj, err)
	}
	if text := msg.Header.Get(ErrorHeader); text != "" {
		return nil, fmt.Errorf("%w: %s", ErrRemote, text)
	}
	return msg.Data, nil
}

func subject(prefix, kind string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + "." + kind
}

func parseColor(s string, dst *gg.RGBA) error {
	if s == "" {
		return nil
	}
	c, err := flo.ParseColor(s)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
