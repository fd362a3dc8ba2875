// Package notifier sends text messages through the GatewayAPI REST gateway.
package notifier

import (
	"context"
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"time"
)

//go:generate mockgen -destination=mock/notifier.go -package=mock . Sender

const DefaultURL = "https://gatewayapi.eu/rest/mtsms"

type Status int

const (
	// StatusSent means the gateway answered with a 2xx status.
	StatusSent Status = iota
	// StatusRejected means the gateway answered with a non-2xx status.
	StatusRejected
	// StatusTransportFailed means no HTTP response was received.
	StatusTransportFailed
)

func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusRejected:
		return "rejected"
	case StatusTransportFailed:
		return "transport_failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

type Message struct {
	Sender    string
	Recipient int64
	Body      string
}

type Sender interface {
	Send(ctx context.Context, msg Message) (Status, error)
}

// TokenSource returns the gateway token. It is called once per Send.
type TokenSource func() string

type Config struct {
	URL     string
	Token   TokenSource
	Timeout time.Duration
}

type Gateway struct {
	client *resty.Client
	url    string
	token  TokenSource
}

func New(cfg Config) *Gateway {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	token := cfg.Token
	if token == nil {
		token = func() string { return "" }
	}

	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Gateway{client: client, url: url, token: token}
}

type recipient struct {
	MSISDN int64 `json:"msisdn"`
}

type smsRequest struct {
	Sender     string      `json:"sender"`
	Message    string      `json:"message"`
	Recipients []recipient `json:"recipients"`
}

func (g *Gateway) Send(ctx context.Context, msg Message) (Status, error) {
	body := smsRequest{
		Sender:     msg.Sender,
		Message:    msg.Body,
		Recipients: []recipient{{MSISDN: msg.Recipient}},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+g.token()).
		SetBody(body).
		Post(g.url)
	if err != nil {
		return StatusTransportFailed, errors.Wrap(err, "post sms")
	}

	if !resp.IsSuccess() {
		return StatusRejected, errors.Errorf("gateway answered %d: %s", resp.StatusCode(), resp.String())
	}

	return StatusSent, nil
}
