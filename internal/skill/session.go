package skill

import "bitbucket.org/sotavant/calepin-skill/internal/models"

// Session gives handlers typed access to the attributes round-tripped by the platform.
type Session struct {
	attrs models.SessionAttributes
}

func NewSession(attrs models.SessionAttributes) *Session {
	return &Session{attrs: attrs}
}

// PendingQuestion reports the question asked on the previous turn, if any.
func (s *Session) PendingQuestion() (models.Question, bool) {
	if s.attrs.PendingQuestion == nil {
		return "", false
	}
	return *s.attrs.PendingQuestion, true
}

func (s *Session) SetPendingQuestion(q models.Question) {
	s.attrs.PendingQuestion = &q
}

func (s *Session) ClearPendingQuestion() {
	s.attrs.PendingQuestion = nil
}

func (s *Session) Attributes() models.SessionAttributes {
	return s.attrs
}
