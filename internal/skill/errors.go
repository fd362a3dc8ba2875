package skill

import (
	"bitbucket.org/sotavant/calepin-skill/internal/logger"
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"fmt"
	"go.uber.org/zap"
)

const textApology = "Sorry, I don't comprendre your command. Please say it again."

// ErrorHandler turns any handler failure into the same apology.
type ErrorHandler func(in *Input, err error) models.Response

func DefaultErrorHandler(_ *Input, err error) models.Response {
	logger.Log.Error("error handled",
		zap.String("message", err.Error()),
		zap.String("stack", fmt.Sprintf("%+v", err)),
	)

	return NewResponse().
		Speak(textApology).
		SimpleCard(cardTitle, err.Error()).
		Reprompt(textApology).
		Build()
}
