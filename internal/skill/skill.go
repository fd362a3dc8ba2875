package skill

import (
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"bitbucket.org/sotavant/calepin-skill/internal/notifier"
	"bitbucket.org/sotavant/calepin-skill/internal/store"
	"context"
	"github.com/pkg/errors"
)

// Skill answers one request envelope per call.
type Skill struct {
	router  *Router
	onError ErrorHandler
}

func New(contacts store.Store, sender notifier.Sender) *Skill {
	h := &handlers{contacts: contacts, sender: sender}

	r := NewRouter()
	r.OnLaunch(h.launch)
	r.OnSessionEnded(h.sessionEnded)
	r.OnIntent(h.help, IntentHelp)
	r.OnIntent(h.cancelOrStop, IntentCancel, IntentStop)
	r.OnIntent(h.listContacts, IntentList)
	r.OnIntent(h.addContact, IntentAjoute, IntentAdd)
	r.OnIntent(h.dialNumber, IntentWeather, IntentCompose, IntentCall)
	r.OnIntent(h.dialRecent, IntentRecent, IntentCallBack)
	r.OnIntent(h.yes, IntentYes)
	r.OnIntent(h.no, IntentNo)

	return &Skill{router: r, onError: DefaultErrorHandler}
}

// Handle returns ErrNoHandler when nothing is registered for the request;
// every other failure is answered by the error handler.
func (s *Skill) Handle(ctx context.Context, env *models.RequestEnvelope) (models.ResponseEnvelope, error) {
	h, err := s.router.Route(env.Request)
	if err != nil {
		return models.ResponseEnvelope{}, err
	}

	in := &Input{
		Envelope: env,
		Session:  NewSession(env.Session.Attributes),
	}

	resp, err := s.invoke(ctx, h, in)
	if err != nil {
		resp = s.onError(in, err)
	}

	attrs := in.Session.Attributes()
	return models.ResponseEnvelope{
		Version:           models.Version,
		SessionAttributes: &attrs,
		Response:          resp,
	}, nil
}

func (s *Skill) invoke(ctx context.Context, h HandlerFunc, in *Input) (resp models.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("handler panic: %v", p)
		}
	}()
	return h(ctx, in)
}
