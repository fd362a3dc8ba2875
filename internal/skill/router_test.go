package skill

import (
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func marker(name string) HandlerFunc {
	return func(context.Context, *Input) (models.Response, error) {
		return NewResponse().Speak(name).Build(), nil
	}
}

func TestRouterRoute(t *testing.T) {
	r := NewRouter()
	r.OnLaunch(marker("launch"))
	r.OnSessionEnded(marker("ended"))
	r.OnIntent(marker("dial"), IntentWeather, IntentCompose, IntentCall)

	testCases := []struct {
		name     string
		req      models.Request
		expected string
	}{
		{name: "launch", req: &models.LaunchRequest{}, expected: "<speak>launch</speak>"},
		{name: "session_ended", req: &models.SessionEndedRequest{}, expected: "<speak>ended</speak>"},
		{name: "weather_quirk", req: intent(IntentWeather, nil), expected: "<speak>dial</speak>"},
		{name: "compose", req: intent(IntentCompose, nil), expected: "<speak>dial</speak>"},
		{name: "call", req: intent(IntentCall, nil), expected: "<speak>dial</speak>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := r.Route(tc.req)
			require.NoError(t, err)

			resp, err := h(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, resp.OutputSpeech.SSML)
		})
	}

	t.Run("unknown_intent", func(t *testing.T) {
		_, err := r.Route(intent("Unknown", nil))
		assert.True(t, errors.Is(err, ErrNoHandler))
		assert.Contains(t, err.Error(), "IntentRequest/Unknown")
	})

	t.Run("nil_request", func(t *testing.T) {
		_, err := r.Route(nil)
		assert.True(t, errors.Is(err, ErrNoHandler))
	})
}

func TestRouterDuplicatePanics(t *testing.T) {
	r := NewRouter()
	r.OnIntent(marker("a"), IntentYes)

	assert.Panics(t, func() { r.OnIntent(marker("b"), IntentNo, IntentYes) })
	assert.Panics(t, func() {
		r.OnLaunch(marker("a"))
		r.OnLaunch(marker("b"))
	})
}
