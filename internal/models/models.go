package models

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
	TypeIntentRequest       = "IntentRequest"
)

const Version = "1.0"

var ErrUnsupportedRequest = errors.New("unsupported request type")

// RequestEnvelope описывает запрос платформы.
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/request-and-response-json-reference.html
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"-"`
}

type Session struct {
	New        bool              `json:"new"`
	SessionID  string            `json:"sessionId"`
	User       User              `json:"user"`
	Attributes SessionAttributes `json:"attributes"`
}

type User struct {
	UserID string `json:"userId"`
}

// Question is a yes/no question the skill asked on a previous turn.
type Question string

const QuestionRedialLastNumber Question = "RedialLastNumber"

// SessionAttributes is the per-conversation state round-tripped by the platform.
type SessionAttributes struct {
	PendingQuestion *Question `json:"questionAsked,omitempty"`
}

// Request is one of *LaunchRequest, *SessionEndedRequest or *IntentRequest.
type Request interface {
	Type() string
	isRequest()
}

type LaunchRequest struct {
	RequestID string `json:"requestId"`
	Locale    string `json:"locale"`
}

type SessionEndedRequest struct {
	RequestID string             `json:"requestId"`
	Reason    string             `json:"reason"`
	Error     *SessionEndedError `json:"error,omitempty"`
}

type SessionEndedError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type IntentRequest struct {
	RequestID string `json:"requestId"`
	Locale    string `json:"locale"`
	Intent    Intent `json:"intent"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot.Value is empty when the platform captured nothing.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

func (*LaunchRequest) Type() string       { return TypeLaunchRequest }
func (*SessionEndedRequest) Type() string { return TypeSessionEndedRequest }
func (*IntentRequest) Type() string       { return TypeIntentRequest }

func (*LaunchRequest) isRequest()       {}
func (*SessionEndedRequest) isRequest() {}
func (*IntentRequest) isRequest()       {}

// SlotValue returns the captured value of the named slot.
func (r *IntentRequest) SlotValue(name string) (string, bool) {
	s, ok := r.Intent.Slots[name]
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}

func (e *RequestEnvelope) UnmarshalJSON(data []byte) error {
	type plain RequestEnvelope
	aux := struct {
		*plain
		Request json.RawMessage `json:"request"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	req, err := decodeRequest(aux.Request)
	if err != nil {
		return err
	}
	e.Request = req
	return nil
}

func decodeRequest(raw json.RawMessage) (Request, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(ErrUnsupportedRequest, "missing request")
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	var req Request
	switch probe.Type {
	case TypeLaunchRequest:
		req = &LaunchRequest{}
	case TypeSessionEndedRequest:
		req = &SessionEndedRequest{}
	case TypeIntentRequest:
		req = &IntentRequest{}
	default:
		return nil, errors.Wrap(ErrUnsupportedRequest, fmt.Sprintf("type %q", probe.Type))
	}

	if err := json.Unmarshal(raw, req); err != nil {
		return nil, errors.Wrapf(err, "decode %s", probe.Type)
	}
	return req, nil
}

// ResponseEnvelope описывает ответ навыка.
type ResponseEnvelope struct {
	Version           string             `json:"version"`
	SessionAttributes *SessionAttributes `json:"sessionAttributes,omitempty"`
	Response          Response           `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

const (
	SpeechTypeSSML = "SSML"
	CardTypeSimple = "Simple"
)

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}
