package services

import (
	"KidAsk/models"
	"strings"
)

// AnswerProvider produces an age-appropriate answer for an already
// cleared question. The pipeline only depends on this interface, so the
// template catalog below can be swapped for a real language model
// without touching moderation or storage.
type AnswerProvider interface {
	Generate(question string, band models.AgeBand) models.GeneratedAnswer
}

// ResponseService answers from a curated per-band template catalog.
type ResponseService struct {
	catalog           models.AnswerCatalog
	topics            []models.VideoTopic
	defaultSuggestion string
}

func NewResponseService(catalog models.AnswerCatalog, topics []models.VideoTopic, defaultSuggestion string) *ResponseService {
	return &ResponseService{
		catalog:           catalog,
		topics:            topics,
		defaultSuggestion: defaultSuggestion,
	}
}

func (s *ResponseService) Generate(question string, band models.AgeBand) models.GeneratedAnswer {
	lowered := strings.ToLower(question)
	templates := s.catalog[band]

	answer := templates.Default
	for _, template := range templates.Templates {
		if strings.Contains(lowered, strings.ToLower(template.Match)) {
			answer = template.Answer
			break
		}
	}

	// Video suggestion runs on its own keyword table and never feeds
	// back into moderation or storage decisions.
	suggestion := s.defaultSuggestion
	for _, topic := range s.topics {
		if strings.Contains(lowered, strings.ToLower(topic.Match)) {
			suggestion = topic.Suggestion
			break
		}
	}

	return models.GeneratedAnswer{Answer: answer, VideoSuggestion: suggestion}
}
