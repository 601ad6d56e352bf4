package config

import "KidAsk/models"

// Static content the pipeline runs on: blocked keyword sets, curated
// answers and video topics. Each loader returns a fresh value that is
// built once in main and passed into the services, so no package holds
// mutable shared state.

// DefaultContentFilters returns the global blocked keyword sets.
// Matching is plain substring, so common conjugations ("bije", "biją")
// are listed alongside the stems they would otherwise miss.
func DefaultContentFilters() models.ContentFilters {
	return models.ContentFilters{
		models.CategoryViolence: {
			"wojna", "bić", "bije", "biją", "zabić", "krzywdzić", "bić się", "walka", "przemoc",
		},
		models.CategoryInappropriate: {
			"brzydkie słowo", "przekleństwo", "idiota", "głupi",
		},
		models.CategoryPolitics: {
			"polityk", "wybory", "partia", "rząd", "prezydent",
		},
		models.CategoryAdult: {
			"alkohol", "piwo", "wódka", "narkotyk", "seks",
		},
		models.CategoryScary: {
			"duch", "potwór", "straszny", "horror", "śmierć",
		},
	}
}

// DefaultAnswerCatalog returns the curated question-answer tables per
// age band. This is a deterministic stand-in for a generative model;
// only the output shape (short, age-appropriate text) is contractual.
func DefaultAnswerCatalog() models.AnswerCatalog {
	return models.AnswerCatalog{
		models.AgeBandPreReader: {
			Templates: []models.AnswerTemplate{
				{Match: "dlaczego niebo jest niebieskie", Answer: "Niebo jest niebieskie, bo światło słońca odbija się od powietrza! Jest bardzo piękne, prawda? 🌤️"},
				{Match: "jak robi koza miau", Answer: "Koty robią \"miau\" swoim głosem! Każde zwierzątko ma swój specjalny dźwięk. 🐱"},
				{Match: "czy rybki śpią", Answer: "Tak, rybki też śpią! Ale nie zamykają oczek jak my. Odpoczywają w wodzie. 🐟"},
			},
			Default: "To bardzo ciekawe pytanie! Powiem ci o tym w prosty sposób. ✨",
		},
		models.AgeBandEarlyReader: {
			Templates: []models.AnswerTemplate{
				{Match: "jak działają rakiety", Answer: "Rakiety kosmiczne działają jak bardzo potężne petardy! Spalają paliwo, które wypycha je w górę z wielką siłą, pozwalając im polecieć w kosmos. 🚀"},
				{Match: "dlaczego dinozaury wyginęły", Answer: "Naukowcy uważają, że wielka asteroida uderzyła w Ziemię 65 milionów lat temu. To spowodowało zmiany klimatu, które były zbyt trudne dla dinozaurów. 🦕"},
				{Match: "jak powstają tęcze", Answer: "Tęcza powstaje, gdy słońce świeci przez krople deszczu! Światło dzieli się na wszystkie kolory - czerwony, pomarańczowy, żółty, zielony, niebieski, indygo i fioletowy. 🌈"},
			},
			Default: "Świetne pytanie! To zjawisko ma ciekawe wyjaśnienie naukowe, które postaram się przedstawić w zrozumiały sposób.",
		},
	}
}

// DefaultVideoTopics returns the topic keyword table behind the video
// suggestion shown next to an answer.
func DefaultVideoTopics() []models.VideoTopic {
	return []models.VideoTopic{
		{Match: "rakiet", Suggestion: "Jak działają rakiety - YouTube Kids"},
		{Match: "niebo", Suggestion: "Dlaczego niebo jest niebieskie - YouTube Kids"},
		{Match: "dinozaur", Suggestion: "Świat dinozaurów - YouTube Kids"},
		{Match: "tęcz", Suggestion: "Jak powstają tęcze - YouTube Kids"},
	}
}

// DefaultVideoSuggestion is the fallback when no topic keyword matches.
const DefaultVideoSuggestion = "Ciekawy film na YouTube Kids"
