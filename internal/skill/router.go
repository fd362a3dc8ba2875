package skill

import (
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"context"
	"fmt"
	"github.com/pkg/errors"
)

var ErrNoHandler = errors.New("no handler for request")

// Input is what a handler sees of the current turn.
type Input struct {
	Envelope *models.RequestEnvelope
	Session  *Session
}

type HandlerFunc func(ctx context.Context, in *Input) (models.Response, error)

type routeKey struct {
	kind   string
	intent string
}

func (k routeKey) String() string {
	if k.intent == "" {
		return k.kind
	}
	return k.kind + "/" + k.intent
}

// Router is a dispatch table keyed by request kind and intent name.
type Router struct {
	routes map[routeKey]HandlerFunc
}

func NewRouter() *Router {
	return &Router{routes: make(map[routeKey]HandlerFunc)}
}

func (r *Router) OnLaunch(h HandlerFunc) {
	r.add(routeKey{kind: models.TypeLaunchRequest}, h)
}

func (r *Router) OnSessionEnded(h HandlerFunc) {
	r.add(routeKey{kind: models.TypeSessionEndedRequest}, h)
}

// OnIntent registers h for every listed intent name.
func (r *Router) OnIntent(h HandlerFunc, names ...string) {
	for _, name := range names {
		r.add(routeKey{kind: models.TypeIntentRequest, intent: name}, h)
	}
}

// add panics on a duplicate key: two handlers can never compete for one request.
func (r *Router) add(key routeKey, h HandlerFunc) {
	if _, ok := r.routes[key]; ok {
		panic(fmt.Sprintf("skill: duplicate route %s", key))
	}
	r.routes[key] = h
}

// Route returns the handler registered for req.
func (r *Router) Route(req models.Request) (HandlerFunc, error) {
	var key routeKey
	switch req := req.(type) {
	case *models.LaunchRequest:
		key = routeKey{kind: models.TypeLaunchRequest}
	case *models.SessionEndedRequest:
		key = routeKey{kind: models.TypeSessionEndedRequest}
	case *models.IntentRequest:
		key = routeKey{kind: models.TypeIntentRequest, intent: req.Intent.Name}
	default:
		return nil, errors.Wrapf(ErrNoHandler, "request %T", req)
	}

	h, ok := r.routes[key]
	if !ok {
		return nil, errors.Wrap(ErrNoHandler, key.String())
	}
	return h, nil
}
