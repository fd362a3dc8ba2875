package skill

import (
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"strings"
)

// ResponseBuilder assembles the response of a single turn.
type ResponseBuilder struct {
	resp models.Response
}

func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{}
}

func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = ssml(text)
	return b
}

func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.Reprompt = &models.Reprompt{OutputSpeech: ssml(text)}
	return b
}

func (b *ResponseBuilder) SimpleCard(title, content string) *ResponseBuilder {
	b.resp.Card = &models.Card{
		Type:    models.CardTypeSimple,
		Title:   title,
		Content: content,
	}
	return b
}

func (b *ResponseBuilder) EndSession(end bool) *ResponseBuilder {
	b.resp.ShouldEndSession = &end
	return b
}

func (b *ResponseBuilder) Build() models.Response {
	return b.resp
}

// ssml wraps text in a single <speak> element, whether or not the caller already did.
func ssml(text string) *models.OutputSpeech {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "<speak>")
	text = strings.TrimSuffix(text, "</speak>")

	return &models.OutputSpeech{
		Type: models.SpeechTypeSSML,
		SSML: "<speak>" + strings.TrimSpace(text) + "</speak>",
	}
}
