package content

// TimelineEvent is one era in the history of the language. Image names a
// file under the frontend's image directory.
type TimelineEvent struct {
	ID            int    `json:"id"`
	Era           string `json:"era"`
	Title         string `json:"title"`
	SanskritTitle string `json:"sanskrit_title"`
	Period        string `json:"period"`
	Description   string `json:"description"`
	Significance  string `json:"significance"`
	Image         string `json:"image"`
}

var timeline = []TimelineEvent{
	{
		ID:            1,
		Era:           "Vedic Era",
		Title:         "The Birth of Sanskrit",
		SanskritTitle: "वैदिक संस्कृतम्",
		Period:        "1500 - 500 BCE",
		Description:   "Sanskrit emerges as the language of the Vedas, the oldest scriptures of Hinduism. The Rigveda, composed in this period, contains over 10,000 verses.",
		Significance:  "Foundation of Indo-European linguistics and spiritual literature.",
		Image:         "vedic-era.png",
	},
	{
		ID:            2,
		Era:           "Classical Age",
		Title:         "Panini & The Grammar",
		SanskritTitle: "पाणिनीय व्याकरणम्",
		Period:        "6th - 4th Century BCE",
		Description:   "Panini creates the Ashtadhyayi, containing 3,959 sutras that define Sanskrit grammar with mathematical precision.",
		Significance:  "First formal grammar in human history, influencing modern linguistics.",
		Image:         "panini-grammar.png",
	},
	{
		ID:            3,
		Era:           "Golden Age",
		Title:         "The Age of Kalidasa",
		SanskritTitle: "कालिदास युगम्",
		Period:        "4th - 5th Century CE",
		Description:   "Kalidasa writes masterpieces like Shakuntala and Meghaduta. Sanskrit reaches its artistic zenith.",
		Significance:  "Peak of Sanskrit poetry, drama, and artistic expression.",
		Image:         "kalidasa-age.png",
	},
	{
		ID:            4,
		Era:           "Medieval Period",
		Title:         "Philosophical Flourishing",
		SanskritTitle: "दर्शन विकासः",
		Period:        "8th - 12th Century CE",
		Description:   "Scholars like Adi Shankaracharya compose profound philosophical texts in Sanskrit, establishing Advaita Vedanta.",
		Significance:  "Development of complex philosophical systems and commentaries.",
		Image:         "philosophical-flourishing.png",
	},
	{
		ID:            5,
		Era:           "Modern Revival",
		Title:         "Sanskrit Renaissance",
		SanskritTitle: "संस्कृत पुनर्जागरणम्",
		Period:        "19th Century - Present",
		Description:   "Western scholars discover Sanskrit's connection to European languages. Digital preservation and AI translation efforts emerge.",
		Significance:  "Global recognition and technological preservation of ancient wisdom.",
		Image:         "sanskrit-renaissance.png",
	},
}

// Timeline returns the eras in chronological order.
func Timeline() []TimelineEvent {
	out := make([]TimelineEvent, len(timeline))
	copy(out, timeline)
	return out
}
