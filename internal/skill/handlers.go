package skill

import (
	"bitbucket.org/sotavant/calepin-skill/internal/logger"
	"bitbucket.org/sotavant/calepin-skill/internal/models"
	"bitbucket.org/sotavant/calepin-skill/internal/notifier"
	"bitbucket.org/sotavant/calepin-skill/internal/store"
	"context"
	"fmt"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"strings"
	"unicode/utf8"
)

const (
	IntentHelp     = "AMAZON.HelpIntent"
	IntentCancel   = "AMAZON.CancelIntent"
	IntentStop     = "AMAZON.StopIntent"
	IntentYes      = "AMAZON.YesIntent"
	IntentNo       = "AMAZON.NoIntent"
	IntentList     = "ListContacts"
	IntentAjoute   = "AjouteNumero"
	IntentAdd      = "AddContact"
	IntentWeather  = "AskWeatherIntent" // routed to dialing; kept until product decides
	IntentCompose  = "ComposeNumero"
	IntentCall     = "CallContact"
	IntentRecent   = "ComposeRecent"
	IntentCallBack = "CallAgain"

	SlotContactName   = "ContactName"
	SlotContactNumber = "ContactNumber"
)

// SenderLabel and Recipient are fixed until contacts carry real numbers.
const (
	SenderLabel = "MonCalepin"
	Recipient   = int64(33781385459)
)

const (
	cardTitle  = "Mon petit calepin."
	editURL    = "http://app.kljh.org/calepin"
	noSlot     = "no slot"
	shortIDLen = 8
)

const (
	textLaunch      = "Carnet d'adresse ouvert"
	textLaunchTitle = "Bienvenu dans votre carnet d'adresses"
	textHelp        = "You can ask me the weather!"
	textGoodbye     = "Goodbye!"
	textMissingInfo = "Il me manque des infos"
	textRedial      = "Je recompose le numero."
	textCalling     = "J'appelle"
	textOk          = "Ok"
	textAddContact  = "Je rajoute %s au %s"
	textSending     = "J'envoie un message à %s."
	textSendFailed  = "Echec de l'envoi du message à %s."
	textCallMeBack  = "Bonjour %s, peux-tu me rappeler ?."
)

type handlers struct {
	contacts store.Store
	sender   notifier.Sender
}

func (h *handlers) launch(_ context.Context, _ *Input) (models.Response, error) {
	return NewResponse().
		Speak(textLaunch).
		Reprompt(textLaunch).
		SimpleCard(textLaunchTitle, textLaunch).
		Build(), nil
}

func (h *handlers) sessionEnded(_ context.Context, in *Input) (models.Response, error) {
	req, ok := in.Envelope.Request.(*models.SessionEndedRequest)
	if !ok {
		return models.Response{}, errors.Errorf("unexpected request %T", in.Envelope.Request)
	}

	fields := []zap.Field{zap.String("reason", req.Reason)}
	if req.Error != nil {
		fields = append(fields, zap.String("error_type", req.Error.Type), zap.String("error", req.Error.Message))
	}
	logger.Log.Info("session ended", fields...)

	return NewResponse().Build(), nil
}

func (h *handlers) help(_ context.Context, _ *Input) (models.Response, error) {
	return NewResponse().
		Speak(textHelp).
		Reprompt(textHelp).
		SimpleCard(textHelp, textHelp).
		Build(), nil
}

func (h *handlers) cancelOrStop(_ context.Context, _ *Input) (models.Response, error) {
	return NewResponse().
		Speak(textGoodbye).
		SimpleCard(textGoodbye, textGoodbye).
		EndSession(true).
		Build(), nil
}

func (h *handlers) listContacts(ctx context.Context, in *Input) (models.Response, error) {
	userID := in.Envelope.Session.User.UserID
	shortID := ShortID(userID)
	logger.Log.Debug("listing contacts", zap.String("user_id", userID), zap.String("short_id", shortID))

	contacts, err := h.contacts.ListContacts(ctx, userID)
	if err != nil {
		return models.Response{}, errors.Wrap(err, "list contacts")
	}

	names := make([]string, 0, len(contacts))
	for _, c := range contacts {
		names = append(names, c.Name)
	}
	list := strings.Join(names, ", ")

	speech := fmt.Sprintf("<speak>Vos contacts : %s. Pour editer vos contacts, allez sur %s . "+
		"Votre identifiant : <say-as interpret-as='spell-out'>%s</say-as> </speak>", list, editURL, shortID)
	display := fmt.Sprintf("Vos contacts : %s.\r\nPour editer vos contacts, allez sur %s \r\n"+
		"Votre identifiant : %s.", list, editURL, shortID)

	return NewResponse().
		Speak(speech).
		SimpleCard(cardTitle, display).
		Build(), nil
}

// ShortID returns the last dot-separated segment of userID, cut to eight characters.
func ShortID(userID string) string {
	id := userID[strings.LastIndex(userID, ".")+1:]
	if utf8.RuneCountInString(id) <= shortIDLen {
		return id
	}
	return string([]rune(id)[:shortIDLen])
}

func (h *handlers) addContact(_ context.Context, in *Input) (models.Response, error) {
	text := textMissingInfo

	if req, ok := in.Envelope.Request.(*models.IntentRequest); ok {
		name, okName := req.SlotValue(SlotContactName)
		number, okNumber := req.SlotValue(SlotContactNumber)
		if okName && okNumber {
			text = fmt.Sprintf(textAddContact, name, number)
		}
	}

	return NewResponse().
		Speak(text).
		SimpleCard(cardTitle, text).
		Build(), nil
}

func (h *handlers) dialNumber(ctx context.Context, in *Input) (models.Response, error) {
	name := noSlot
	if req, ok := in.Envelope.Request.(*models.IntentRequest); ok {
		if v, ok := req.SlotValue(SlotContactName); ok {
			name = v
		}
	}

	text := fmt.Sprintf(textSending, name)

	status, err := h.sender.Send(ctx, notifier.Message{
		Sender:    SenderLabel,
		Recipient: Recipient,
		Body:      fmt.Sprintf(textCallMeBack, name),
	})
	if status != notifier.StatusSent {
		logger.Log.Warn("cannot send text message",
			zap.String("contact", name),
			zap.Stringer("status", status),
			zap.Error(err),
		)
		text = fmt.Sprintf(textSendFailed, name)
	}

	return NewResponse().
		Speak(text).
		SimpleCard(cardTitle, text).
		Build(), nil
}

func (h *handlers) dialRecent(_ context.Context, _ *Input) (models.Response, error) {
	return NewResponse().
		Speak(textRedial).
		SimpleCard(cardTitle, textRedial).
		Build(), nil
}

func (h *handlers) yes(_ context.Context, in *Input) (models.Response, error) {
	// вопрос нужно сбросить, иначе следующий "да" будет понят неверно
	if q, ok := in.Session.PendingQuestion(); ok && q == models.QuestionRedialLastNumber {
		in.Session.ClearPendingQuestion()
	}

	return NewResponse().Speak(textCalling).Build(), nil
}

func (h *handlers) no(_ context.Context, _ *Input) (models.Response, error) {
	return NewResponse().Speak(textOk).Build(), nil
}
