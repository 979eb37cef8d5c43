package content

import "strconv"

// Passage is one paragraph of a story in both languages.
type Passage struct {
	Sanskrit string `json:"sanskrit"`
	English  string `json:"english"`
}

// Moral closes a story. Lesson is the longer English takeaway.
type Moral struct {
	Sanskrit string `json:"sanskrit"`
	English  string `json:"english"`
	Lesson   string `json:"lesson"`
}

// Article is a short bilingual reading story.
type Article struct {
	ID            int       `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	SanskritTitle string    `json:"sanskrit_title"`
	Summary       string    `json:"summary"`
	Excerpt       Passage   `json:"excerpt"`
	Story         []Passage `json:"story,omitempty"`
	Moral         Moral     `json:"moral"`
}

var articles = []Article{
	{
		ID:            1,
		Slug:          "thirsty-crow",
		Title:         "The Thirsty Crow",
		SanskritTitle: "तृषितः काकः",
		Summary:       "A clever crow uses intelligence to reach water at the bottom of a well.",
		Excerpt:       Passage{Sanskrit: "एकः कृष्णः काकः आसीत्। सः बहु तृषितः आसीत्। सः जलं अन्वेषयति स्म।", English: "There was a black crow. He was very thirsty. He was searching for water."},
		Story:         []Passage{
			{
				Sanskrit: "एकस्मिन् ग्रामे एकः कृष्णवर्णः काकः आसीत्। सः बहु तृषितः आसीत्। सः जलं अन्वेषयति स्म। किन्तु सर्वत्र जलं न प्राप्तम्।",
				English:  "In a village, there lived a black crow. He was very thirsty. He searched for water everywhere. But he couldn't find water anywhere.",
			},
			{
				Sanskrit: "अन्ते सः एकस्मिन् कूपे जलं दृष्टवान्। परन्तु जलं कूपस्य अधः आसीत्। काकः चिन्तयति स्म - \"कथं जलं पिबामि?\"",
				English:  "Finally, he saw water in a well. But the water was at the bottom of the well. The crow thought, \"How can I drink the water?\"",
			},
			{
				Sanskrit: "तदा सः एकां शिलां दृष्टवान्। सः शिलां गृहीत्वा कूपे पातितवान्। जलं ऊर्ध्वं आगतम्। काकः जलं पीत्वा तृप्तः अभवत्।",
				English:  "Then he saw a stone. He picked up the stone and dropped it into the well. The water level rose. The crow drank the water and became satisfied.",
			},
		},
		Moral: Moral{
			Sanskrit: "बुद्ध्या कार्यं सिद्ध्यति।",
			English:  "Intelligence accomplishes work.",
			Lesson:   "Intelligence and wisdom can solve the most difficult problems.",
		},
	},
	{
		ID:            2,
		Slug:          "lion-and-mouse",
		Title:         "The Lion and Mouse",
		SanskritTitle: "सिंहश्च मूषकश्च",
		Summary:       "A mighty lion spares a tiny mouse, who later saves his life by cutting him free from a hunter's net.",
		Excerpt:       Passage{Sanskrit: "एकस्मिन् वने एकः सिंहः वसति स्म। एकदा सः निद्रां करोति स्म।", English: "In a forest, there lived a lion. One day, he was sleeping."},
		Story:         []Passage{
			{
				Sanskrit: "एकस्मिन् वने एकः सिंहः वसति स्म। सः सर्वदा शक्तिमान् आसीत्। एकदा सः निद्रां करोति स्म। तदा एकः मूषकः सिंहस्य पुच्छे क्रीडति स्म।",
				English:  "In a forest, there lived a lion. He was always powerful. One day, he was sleeping. Then a mouse was playing with the lion's tail.",
			},
			{
				Sanskrit: "सिंहः जागृतः अभवत्। सः क्रुद्धः मूषकं गृहीतवान्। मूषकः भीतः अभवत्। सः सिंहं प्रार्थयति स्म - \"क्षमस्व मां महाराज! यदि मां मोक्षयसि तर्हि अहं ते उपकारं करिष्यामि।\"",
				English:  "The lion woke up. He was angry and caught the mouse. The mouse was scared. He begged the lion, \"Forgive me, Your Majesty! If you release me, I will help you.\"",
			},
			{
				Sanskrit: "सिंहः हसित्वा मूषकं मोक्षितवान्। परेद्युः शिकारिणः सिंहं जाले बद्धवन्तः। सिंहः गर्जति स्म। मूषकः शब्दं श्रुत्वा आगतः। सः जालं कटितवान्। सिंहः मुक्तः अभवत्।",
				English:  "The lion laughed and released the mouse. The next day, hunters trapped the lion in a net. The lion roared. The mouse heard the sound and came. He cut the net. The lion was freed.",
			},
		},
		Moral: Moral{
			Sanskrit: "न कदापि परं अवमानय। सर्वे कस्यचित् उपयोगिनः भवन्ति।",
			English:  "Never underestimate anyone. Everyone can be useful to someone.",
			Lesson:   "Never underestimate the power of kindness and never judge others by their size or appearance.",
		},
	},
	{
		ID:            3,
		Slug:          "true-friendship",
		Title:         "True Friendship",
		SanskritTitle: "सच्ची मैत्री",
		Summary:       "A story of two friends where one helps the other in need, but their friendship is tested when fortunes reverse.",
		Excerpt:       Passage{Sanskrit: "द्वौ मित्रे आस्ताम्। एकः धनवान् अन्यः निर्धनः।", English: "There were two friends. One was rich, the other was poor."},
		Story:         []Passage{
			{
				Sanskrit: "द्वौ मित्रौ आस्ताम् - एकः धनवान् अन्यः निर्धनः। धनवान् मित्रः सर्वदा धनं व्ययति स्म। निर्धनः मित्रः कठिनं कार्यं करोति स्म।",
				English:  "There were two friends - one rich and one poor. The rich friend always spent money. The poor friend worked hard.",
			},
			{
				Sanskrit: "एकदा धनवान् मित्रः सर्वं धनं व्ययितवान्। सः निर्धनं मित्रं गतवान्। सः उक्तवान् - \"मम सर्वं धनं नष्टम्। कृपया सहायं कुरु।\"",
				English:  "One day, the rich friend spent all his money. He went to his poor friend. He said, \"All my money is gone. Please help me.\"",
			},
			{
				Sanskrit: "निर्धनः मित्रः उक्तवान् - \"आगच्छ। मम गृहे वस। अहं ते सहायं करिष्यामि।\" सः स्वस्य अन्नं विभज्य धनवते दत्तवान्।",
				English:  "The poor friend said, \"Come. Live in my house. I will help you.\" He shared his food with the rich friend.",
			},
			{
				Sanskrit: "कालेन धनवान् मित्रः पुनः धनवान् अभवत्। सः निर्धनं मित्रं विस्मृतवान्। निर्धनः मित्रः रोगी अभवत्। सः धनवन्तं मित्रं गतवान्।",
				English:  "With time, the rich friend became rich again. He forgot his poor friend. The poor friend became sick. He went to his rich friend.",
			},
			{
				Sanskrit: "परन्तु धनवान् मित्रः द्वारं पिहितवान्। सः उक्तवान् - \"अहं त्वां न जानामि। गच्छ।\"",
				English:  "But the rich friend closed the door. He said, \"I don't know you. Go away.\"",
			},
		},
		Moral: Moral{
			Sanskrit: "सच्ची मैत्री परीक्षायां सिद्ध्यति। धनं न मैत्रीम् आकर्षति।",
			English:  "True friendship is proven in testing times. Money does not attract true friendship.",
			Lesson:   "True friendship endures through good times and bad, regardless of wealth or status.",
		},
	},
}

// Articles returns every article without its story, for listing.
func Articles() []Article {
	out := make([]Article, len(articles))
	for i, a := range articles {
		a.Story = nil
		out[i] = a
	}
	return out
}

// FindArticle looks an article up by slug or numeric id.
func FindArticle(key string) (Article, bool) {
	for _, a := range articles {
		if a.Slug == key || strconv.Itoa(a.ID) == key {
			a.Story = append([]Passage(nil), a.Story...)
			return a, true
		}
	}
	return Article{}, false
}
