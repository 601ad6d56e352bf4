package services

import (
	"KidAsk/config"
	"KidAsk/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newDefaultResponseService() *ResponseService {
	return NewResponseService(
		config.DefaultAnswerCatalog(),
		config.DefaultVideoTopics(),
		config.DefaultVideoSuggestion,
	)
}

func TestGeneratePreReaderSkyAnswer(t *testing.T) {
	service := newDefaultResponseService()

	generated := service.Generate("Dlaczego niebo jest niebieskie?", models.AgeBandPreReader)

	assert.Contains(t, generated.Answer, "Niebo jest niebieskie")
	assert.Contains(t, generated.VideoSuggestion, "niebo")
}

func TestGenerateBandSelectsCatalog(t *testing.T) {
	service := newDefaultResponseService()

	pre := service.Generate("Jakie jest twoje ulubione zwierzę?", models.AgeBandPreReader)
	early := service.Generate("Jakie jest twoje ulubione zwierzę?", models.AgeBandEarlyReader)

	assert.NotEqual(t, pre.Answer, early.Answer)
}

func TestGenerateFallsBackToBandDefault(t *testing.T) {
	service := newDefaultResponseService()

	generated := service.Generate("Ile waży chmura?", models.AgeBandEarlyReader)

	assert.Equal(t, config.DefaultAnswerCatalog()[models.AgeBandEarlyReader].Default, generated.Answer)
	assert.Equal(t, config.DefaultVideoSuggestion, generated.VideoSuggestion)
}

func TestGenerateEarlyReaderRocketAnswer(t *testing.T) {
	service := newDefaultResponseService()

	generated := service.Generate("Jak działają rakiety?", models.AgeBandEarlyReader)

	assert.Contains(t, generated.Answer, "Rakiety")
	assert.Equal(t, "Jak działają rakiety - YouTube Kids", generated.VideoSuggestion)
}

func TestGenerateSuggestionIndependentOfTemplateMatch(t *testing.T) {
	service := newDefaultResponseService()

	// No answer template matches, but the topic table still hits.
	generated := service.Generate("Opowiedz mi o dinozaurach", models.AgeBandPreReader)

	assert.Equal(t, config.DefaultAnswerCatalog()[models.AgeBandPreReader].Default, generated.Answer)
	assert.Equal(t, "Świat dinozaurów - YouTube Kids", generated.VideoSuggestion)
}

func TestAgeBandCutoff(t *testing.T) {
	assert.Equal(t, models.AgeBandPreReader, models.AgeBandFor(4))
	assert.Equal(t, models.AgeBandPreReader, models.AgeBandFor(6))
	assert.Equal(t, models.AgeBandEarlyReader, models.AgeBandFor(7))
	assert.Equal(t, models.AgeBandEarlyReader, models.AgeBandFor(10))
}
