package bot

import "github.com/n9rs9/hadithsahih/internal/domain"

// Bilingual prompt shown before any content; both locales appear in one
// message because the language is not known yet.
const (
	languagePromptText = "🔤 <b>Choisissez votre langue / Choose your language</b>\n\n" +
		"<i>Cliquez sur un bouton ci-dessous</i>\n<i>Click a button below</i>"

	pingReply = "🔹 <i>Latence : %dms / Latency: %dms</i>"
)

// Messages holds every user-facing string for one locale.
type Messages struct {
	NotYourCommand string
	Expired        string

	CommandsTitle string
	CommandsBody  string

	InfoTitle string
	InfoBody  string // fmt: users served count

	HadithTitle  string
	HadithFooter string

	BookTitle       string
	BookHeader      string // shown on the first page only
	BookEnd         string
	BookUnavailable string
	BookEmpty       string

	QuizTitle       string
	QuizQuestion    string // fmt: index, total
	QuizUnavailable string
	QuizNotEnough   string
	QuizFinalTitle  string
	QuizFinal       string // fmt: score, total
	ScorePerfect    string
	ScoreGood       string
	ScoreLow        string

	HadithUnavailable string
	HadithEmpty       string

	PrevButton string
	NextButton string
}

var catalog = map[domain.Language]Messages{
	domain.LanguageFR: {
		NotYourCommand: "Ce n'est pas ta commande!",
		Expired:        "Cette commande a expiré. Relance-la!",

		CommandsTitle: "Commandes de HadithSahih",
		CommandsBody: "Toutes les commandes de ce bot 📡\n\n" +
			" • /hadith — <i>Affiche un hadith sahih aléatoire</i>\n" +
			" • /book — <i>Liste de livres recommandés</i>\n" +
			" • /quiz — <i>Un petit quiz de 3 questions</i>\n" +
			" • /commands — <i>Toutes les commandes du bot</i>\n" +
			" • /ping — <i>Vérifie la latence du bot</i>\n" +
			" • /info — <i>Informations sur le bot</i>",

		InfoTitle: "• HadithSahih",
		InfoBody: "Des Hadiths Sahih pour vous chaque jour ! 📚\n\n" +
			"Propriétaire : @n9rs9\nUtilisateurs servis : %d",

		HadithTitle:  "✨ Hadith Sahih Aléatoire",
		HadithFooter: "رَبِّ زِدْنِي عِلْمًا - Rabbi zidnī 'ilman - Mon Seigneur, augmente ma connaissance",

		BookTitle:       "📚 Livres recommandés",
		BookHeader:      "Quelques lectures pour approfondir. Navigue avec les boutons ci-dessous.",
		BookEnd:         "Fin de la liste. Qu'Allah facilite ta lecture!",
		BookUnavailable: "Une erreur est survenue, la liste de livres est indisponible.",
		BookEmpty:       "Aucun livre trouvé pour le moment.",

		QuizTitle:       "🧠 Quiz HadithSahih",
		QuizQuestion:    "Question %d/%d",
		QuizUnavailable: "Une erreur est survenue, le quiz est indisponible.",
		QuizNotEnough:   "Pas assez de questions disponibles pour lancer le quiz.",
		QuizFinalTitle:  "🏁 Quiz terminé !",
		QuizFinal:       "Ton score : %d/%d",
		ScorePerfect:    "Ma shaa Allah, sans faute ! 🌟",
		ScoreGood:       "Bien joué, continue d'apprendre ! 👍",
		ScoreLow:        "Continue tes efforts, la connaissance vient avec la patience. 🤲",

		HadithUnavailable: "Une erreur est survenue, le hadith est indisponible.",
		HadithEmpty:       "Le fichier de hadiths est vide.",

		PrevButton: "⬅️ Précédent",
		NextButton: "Suivant ➡️",
	},
	domain.LanguageEN: {
		NotYourCommand: "This is not your command!",
		Expired:        "This command expired. Run it again!",

		CommandsTitle: "HadithSahih's Commands",
		CommandsBody: "All commands for this bot 📡\n\n" +
			" • /hadith — <i>Displays a random Sahih hadith</i>\n" +
			" • /book — <i>Recommended book list</i>\n" +
			" • /quiz — <i>A short 3-question quiz</i>\n" +
			" • /commands — <i>All commands for this bot</i>\n" +
			" • /ping — <i>Check the bot's latency</i>\n" +
			" • /info — <i>Bot information</i>",

		InfoTitle: "• HadithSahih",
		InfoBody: "Sahih Hadiths for you every day! 📚\n\n" +
			"Owner: @n9rs9\nUsers served: %d",

		HadithTitle:  "✨ Random Sahih Hadith",
		HadithFooter: "رَبِّ زِدْنِي عِلْمًا - Rabbi zidnī 'ilman - My Lord, increase me in knowledge",

		BookTitle:       "📚 Recommended books",
		BookHeader:      "Some reading to go deeper. Navigate with the buttons below.",
		BookEnd:         "End of the list. May Allah ease your reading!",
		BookUnavailable: "An error occurred, the book list is unavailable.",
		BookEmpty:       "No books found for now.",

		QuizTitle:       "🧠 HadithSahih Quiz",
		QuizQuestion:    "Question %d/%d",
		QuizUnavailable: "An error occurred, the quiz is unavailable.",
		QuizNotEnough:   "Not enough questions available to start the quiz.",
		QuizFinalTitle:  "🏁 Quiz finished!",
		QuizFinal:       "Your score: %d/%d",
		ScorePerfect:    "Ma shaa Allah, a perfect run! 🌟",
		ScoreGood:       "Well done, keep learning! 👍",
		ScoreLow:        "Keep at it, knowledge comes with patience. 🤲",

		HadithUnavailable: "An error occurred, the hadith file is unavailable.",
		HadithEmpty:       "The hadiths file is empty.",

		PrevButton: "⬅️ Previous",
		NextButton: "Next ➡️",
	},
}

// msgs returns the catalog for lang, defaulting to English for the
// zero value.
func msgs(lang domain.Language) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[domain.LanguageEN]
}
