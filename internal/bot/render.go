package bot

import (
	"fmt"
	"html"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/n9rs9/hadithsahih/internal/domain"
	"github.com/n9rs9/hadithsahih/internal/session"
)

// Callback payloads. One OnCallback handler parses these; no behavior
// hangs off individual buttons.
const (
	actionLanguage = "lang"
	actionPage     = "page"
	actionQuiz     = "quiz"
)

// view is a full replacement payload for a session's message. The
// transport only supports whole-message edits, so every transition
// produces one of these.
type view struct {
	text   string
	markup *tele.ReplyMarkup
}

func languagePrompt() view {
	return view{
		text: languagePromptText,
		markup: &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{{
			{Text: "🇫🇷 FR", Data: actionLanguage + "|fr"},
			{Text: "🇬🇧 ENG", Data: actionLanguage + "|en"},
		}}},
	}
}

func renderCommands(lang domain.Language) view {
	m := msgs(lang)
	return view{text: "<b>" + m.CommandsTitle + "</b>\n\n" + m.CommandsBody}
}

func renderInfo(lang domain.Language, usersServed int64) view {
	m := msgs(lang)
	return view{text: "<b>" + m.InfoTitle + "</b>\n\n" + fmt.Sprintf(m.InfoBody, usersServed)}
}

func renderHadith(lang domain.Language, text string) view {
	m := msgs(lang)
	return view{text: "<b>" + m.HadithTitle + "</b>\n\n" +
		html.EscapeString(text) + "\n\n<i>" + m.HadithFooter + "</i>"}
}

// renderNotice is the terminal payload for load failures and empty
// content. The two cases carry distinct localized messages.
func renderNotice(lang domain.Language, text string) view {
	return view{text: "<i>" + text + "</i>"}
}

func renderBookPage(lang domain.Language, p *session.Pages) view {
	m := msgs(lang)

	var b strings.Builder
	b.WriteString("<b>" + m.BookTitle + "</b>\n\n")
	if p.Current == 0 {
		b.WriteString("<i>" + m.BookHeader + "</i>\n\n")
	}

	page := p.Page()
	if len(page) == 0 {
		b.WriteString("<i>" + m.BookEnd + "</i>")
	} else {
		for i, entry := range page {
			fmt.Fprintf(&b, "%d. <a href=\"%s\">%s</a>\n",
				p.Offset()+i+1,
				html.EscapeString(entry.Link),
				html.EscapeString(entry.Title))
		}
	}
	fmt.Fprintf(&b, "\n<i>%d/%d</i>", p.Current+1, p.TotalPages())

	var row []tele.InlineButton
	if p.Current > 0 {
		row = append(row, tele.InlineButton{Text: m.PrevButton, Data: actionPage + "|prev"})
	}
	if p.Current < p.TotalPages()-1 {
		row = append(row, tele.InlineButton{Text: m.NextButton, Data: actionPage + "|next"})
	}

	return view{
		text:   b.String(),
		markup: &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{row}},
	}
}

func renderQuizQuestion(lang domain.Language, q *session.Quiz) view {
	m := msgs(lang)

	var b strings.Builder
	b.WriteString("<b>" + m.QuizTitle + "</b>\n")
	fmt.Fprintf(&b, "<i>"+m.QuizQuestion+"</i>\n\n", q.Index+1, len(q.Questions))
	b.WriteString(html.EscapeString(q.Current().Text))

	rows := make([][]tele.InlineButton, 0, len(q.Options))
	for i, opt := range q.Options {
		rows = append(rows, []tele.InlineButton{{
			Text: opt,
			Data: fmt.Sprintf("%s|%d", actionQuiz, i),
		}})
	}

	return view{
		text:   b.String(),
		markup: &tele.ReplyMarkup{InlineKeyboard: rows},
	}
}

func renderQuizFinal(lang domain.Language, score, total int) view {
	m := msgs(lang)

	tier := m.ScoreLow
	switch {
	case score == total:
		tier = m.ScorePerfect
	case score*2 >= total:
		tier = m.ScoreGood
	}

	return view{text: "<b>" + m.QuizFinalTitle + "</b>\n\n" +
		fmt.Sprintf(m.QuizFinal, score, total) + "\n\n<i>" + tier + "</i>"}
}
