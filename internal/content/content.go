// Package content loads the bot's flat-file content resources.
//
// Files are re-read on every call. Content is small, edited by hand on
// the host, and must be picked up without a restart, so there is no
// caching layer.
package content

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/n9rs9/hadithsahih/internal/domain"
)

// Repository reads typed records out of the data directory.
type Repository struct {
	dataDir string
}

// NewRepository creates a repository rooted at dataDir.
func NewRepository(dataDir string) *Repository {
	return &Repository{dataDir: dataDir}
}

// Quotations returns every non-empty line of the hadith file for lang.
// An empty slice with a nil error means the file was readable but held
// no usable lines; callers render that case differently from an error.
func (r *Repository) Quotations(lang domain.Language) ([]string, error) {
	path := filepath.Join(r.dataDir, "hadiths_"+lang.FileSuffix()+".txt")
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load quotations: %w", err)
	}
	return lines, nil
}

// Books parses `[LINK] [TITLE]` lines for lang. Malformed lines are
// skipped; only file-level I/O failures are returned as errors.
func (r *Repository) Books(lang domain.Language) ([]domain.BookEntry, error) {
	path := filepath.Join(r.dataDir, "books_"+lang.FileSuffix()+".txt")
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}

	var entries []domain.BookEntry
	for _, line := range lines {
		groups := bracketGroups(line)
		if len(groups) < 2 || groups[0] == "" || groups[1] == "" {
			slog.Debug("Skipping malformed book line", "path", path, "line", line)
			continue
		}
		entries = append(entries, domain.BookEntry{
			Link:  groups[0],
			Title: groups[1],
		})
	}
	return entries, nil
}

// Questions parses `[QUESTION] [CORRECT] [WRONG] [WRONG]` lines for
// lang. A line with any other number of bracket groups is dropped.
func (r *Repository) Questions(lang domain.Language) ([]domain.QuizQuestion, error) {
	path := filepath.Join(r.dataDir, "quiz_"+lang.FileSuffix()+".txt")
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	var questions []domain.QuizQuestion
	for _, line := range lines {
		groups := bracketGroups(line)
		if len(groups) != 4 || hasEmpty(groups) {
			slog.Debug("Skipping malformed quiz line", "path", path, "line", line)
			continue
		}
		questions = append(questions, domain.QuizQuestion{
			Text:        groups[0],
			Correct:     groups[1],
			Distractors: [2]string{groups[2], groups[3]},
		})
	}
	return questions, nil
}

// readLines returns the trimmed non-empty lines of a UTF-8 text file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// bracketGroups scans a line left to right and returns the trimmed
// contents of every `[...]` pair, in order. Unbalanced brackets end the
// scan; whatever was collected before them is returned.
func bracketGroups(line string) []string {
	var groups []string
	rest := line
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			return groups
		}
		closing := strings.IndexByte(rest[open:], ']')
		if closing < 0 {
			return groups
		}
		groups = append(groups, strings.TrimSpace(rest[open+1:open+closing]))
		rest = rest[open+closing+1:]
	}
}

func hasEmpty(groups []string) bool {
	for _, g := range groups {
		if g == "" {
			return true
		}
	}
	return false
}
