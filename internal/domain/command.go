package domain

// Command identifies which content flow a session was created for.
type Command string

const (
	CommandCommands Command = "commands"
	CommandInfo     Command = "info"
	CommandHadith   Command = "hadith"
	CommandBook     Command = "book"
	CommandQuiz     Command = "quiz"
)
