package bot

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n9rs9/hadithsahih/internal/domain"
	"github.com/n9rs9/hadithsahih/internal/session"
)

func TestLanguagePromptButtons(t *testing.T) {
	v := languagePrompt()
	require.NotNil(t, v.markup)
	require.Len(t, v.markup.InlineKeyboard, 1)
	require.Len(t, v.markup.InlineKeyboard[0], 2)

	assert.Equal(t, "lang|fr", v.markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "lang|en", v.markup.InlineKeyboard[0][1].Data)
	assert.Contains(t, v.text, "Choisissez votre langue")
	assert.Contains(t, v.text, "Choose your language")
}

func TestRenderBookFirstPage(t *testing.T) {
	p := session.NewPages([]domain.BookEntry{
		{Title: "Title One", Link: "http://x.test"},
	}, 5)

	v := renderBookPage(domain.LanguageEN, p)
	assert.Contains(t, v.text, msgs(domain.LanguageEN).BookHeader,
		"the instruction header appears on page one only")
	assert.Contains(t, v.text, `1. <a href="http://x.test">Title One</a>`)
	assert.Contains(t, v.text, "1/2")

	require.NotNil(t, v.markup)
	require.Len(t, v.markup.InlineKeyboard[0], 1, "first page renders only a next button")
	assert.Equal(t, "page|next", v.markup.InlineKeyboard[0][0].Data)
}

func TestRenderBookForcedEndPage(t *testing.T) {
	p := session.NewPages([]domain.BookEntry{
		{Title: "Title One", Link: "http://x.test"},
	}, 5)
	p.Next()

	v := renderBookPage(domain.LanguageFR, p)
	assert.Contains(t, v.text, msgs(domain.LanguageFR).BookEnd)
	assert.NotContains(t, v.text, msgs(domain.LanguageFR).BookHeader)
	assert.NotContains(t, v.text, "Title One")

	require.Len(t, v.markup.InlineKeyboard[0], 1, "last page renders only a previous button")
	assert.Equal(t, "page|prev", v.markup.InlineKeyboard[0][0].Data)
}

func TestRenderBookMiddlePageNumbering(t *testing.T) {
	entries := make([]domain.BookEntry, 12)
	for i := range entries {
		entries[i] = domain.BookEntry{Title: "Book", Link: "http://b.test"}
	}
	p := session.NewPages(entries, 5)
	p.Next()

	v := renderBookPage(domain.LanguageEN, p)
	assert.Contains(t, v.text, "6. <a", "numbering continues from the page offset")
	require.Len(t, v.markup.InlineKeyboard[0], 2, "middle page renders both buttons")
}

func TestRenderBookEscapesEntries(t *testing.T) {
	p := session.NewPages([]domain.BookEntry{
		{Title: "Fiqh <basics>", Link: "http://x.test/?a=1&b=2"},
	}, 5)

	v := renderBookPage(domain.LanguageEN, p)
	assert.Contains(t, v.text, "Fiqh &lt;basics&gt;")
	assert.NotContains(t, v.text, "<basics>")
}

func TestRenderQuizQuestionButtons(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	quiz, err := session.NewQuiz([]domain.QuizQuestion{
		{Text: "What is the first pillar?", Correct: "Shahada", Distractors: [2]string{"Salah", "Zakat"}},
		{Text: "How many daily prayers?", Correct: "Five", Distractors: [2]string{"Three", "Seven"}},
		{Text: "Which month is fasting?", Correct: "Ramadan", Distractors: [2]string{"Shawwal", "Rajab"}},
	}, 3, rng)
	require.NoError(t, err)

	v := renderQuizQuestion(domain.LanguageEN, quiz)
	assert.Contains(t, v.text, "Question 1/3")
	assert.Contains(t, v.text, quiz.Current().Text)

	require.Len(t, v.markup.InlineKeyboard, 3, "one button row per option")
	var labels []string
	for i, row := range v.markup.InlineKeyboard {
		require.Len(t, row, 1)
		assert.Equal(t, "quiz|"+strconv.Itoa(i), row[0].Data)
		labels = append(labels, row[0].Text)
	}
	assert.ElementsMatch(t, quiz.Options, labels)
}

func TestRenderQuizFinalTiers(t *testing.T) {
	tests := []struct {
		score int
		total int
		tier  string
	}{
		{3, 3, msgs(domain.LanguageEN).ScorePerfect},
		{2, 3, msgs(domain.LanguageEN).ScoreGood},
		{0, 3, msgs(domain.LanguageEN).ScoreLow},
	}

	for _, tt := range tests {
		v := renderQuizFinal(domain.LanguageEN, tt.score, tt.total)
		assert.Contains(t, v.text, tt.tier, "score %d/%d", tt.score, tt.total)
		assert.Nil(t, v.markup, "the final view has no affordances")
	}
}

func TestCatalogCoversBothLanguages(t *testing.T) {
	fr := msgs(domain.LanguageFR)
	en := msgs(domain.LanguageEN)

	assert.NotEqual(t, fr.NotYourCommand, en.NotYourCommand)
	assert.Equal(t, "Ce n'est pas ta commande!", fr.NotYourCommand)
	assert.Equal(t, "This is not your command!", en.NotYourCommand)

	// Unknown language falls back to English.
	assert.Equal(t, en, msgs(domain.Language("")))
}

func TestRenderHadithEscapesQuote(t *testing.T) {
	v := renderHadith(domain.LanguageEN, `The Prophet said: "seek knowledge" <source>`)
	assert.True(t, strings.Contains(v.text, "&lt;source&gt;"))
	assert.Contains(t, v.text, msgs(domain.LanguageEN).HadithFooter)
}
