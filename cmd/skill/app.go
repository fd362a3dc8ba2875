package main

import (
	"bitbucket.org/sotavant/calepin-skill/internal/logger"
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"bitbucket.org/sotavant/calepin-skill/internal/skill"
	"encoding/json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"net/http"
)

type app struct {
	skill *skill.Skill
}

func newApp(s *skill.Skill) *app {
	return &app{skill: s}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.RequestEnvelope
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, models.ErrUnsupportedRequest) {
			logger.Log.Debug("unsupported request type", zap.Error(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}

		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := a.skill.Handle(ctx, &req)
	if err != nil {
		// ни один обработчик не подошёл
		logger.Log.Debug("no handler for request", zap.Error(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
