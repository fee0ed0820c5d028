package quizgen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"quiz-mcq/internal/domain"

	"go.uber.org/zap"
)

const (
	questionMarker = "Question:"
	answerMarker   = "Answer:"
)

var optionMarkers = [4]string{"a)", "b)", "c)", "d)"}

// Parser extracts question blocks from free-text model completions.
//
// A block starts at the literal "Question:" and must contain, in order, lines
// starting with "a)", "b)", "c)", "d)" and "Answer:" followed by one of the
// letters a-d in either case. Each field runs from the end of its marker up to
// the line break that precedes the next marker, so a field may span several
// lines. A block never extends past the next line that opens with "Question:"
// (optionally numbered or bulleted); a block that is incomplete within that range
// is skipped and scanning resumes there. "Question:" elsewhere is ordinary text.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a Parser. Dropped blocks are reported at debug level.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// ParseCompletion parses text without logging.
func ParseCompletion(text string) []domain.QuestionRecord {
	return NewParser(nil).Parse(text)
}

// Parse returns every well-formed question block in text, in source order.
// It never fails; text without any valid block yields an empty slice.
func (p *Parser) Parse(text string) []domain.QuestionRecord {
	records := make([]domain.QuestionRecord, 0, 5)

	pos := 0
	for pos < len(text) {
		idx := strings.Index(text[pos:], questionMarker)
		if idx < 0 {
			break
		}
		start := pos + idx
		body := start + len(questionMarker)

		limit := nextBlockStart(text, body)

		record, end, reason := scanBlock(text, body, limit)
		if reason != "" {
			p.logger.Debug("Dropping malformed question block",
				zap.Int("offset", start),
				zap.String("reason", reason),
			)
			pos = limit
			continue
		}

		records = append(records, record)
		pos = end
	}

	return records
}

// nextBlockStart returns the offset of the first "Question:" at or after from that
// opens a line, or len(text). Only whitespace and list decoration such as "1.",
// "2)", "-", "*" or "#" may precede it on its line, so "Question:" quoted inside a
// question or an option does not end the current block.
func nextBlockStart(text string, from int) int {
	for from < len(text) {
		idx := strings.Index(text[from:], questionMarker)
		if idx < 0 {
			break
		}
		at := from + idx
		if opensLine(text, at) {
			return at
		}
		from = at + len(questionMarker)
	}
	return len(text)
}

func opensLine(text string, at int) bool {
	i := at
	for i > 0 {
		switch text[i-1] {
		case '\n':
			return true
		case ' ', '\t', '.', ')', '-', '*', '#',
			'0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			i--
		default:
			return false
		}
	}
	return true
}

// scanBlock reads the fields of a single block from text[from:limit]. On success
// it returns the record and the offset just past the answer letter; otherwise a
// non-empty reason.
func scanBlock(text string, from, limit int) (domain.QuestionRecord, int, string) {
	var question string
	var options [4]string

	cursor := from
	for i, marker := range optionMarkers {
		lineEnd, next, ok := seekLineMarker(text, cursor, limit, marker)
		if !ok {
			return domain.QuestionRecord{}, 0, "missing " + marker
		}
		field := strings.TrimSpace(text[cursor:lineEnd])
		if i == 0 {
			question = field
		} else {
			options[i-1] = field
		}
		cursor = next
	}

	lineEnd, letter, end, ok := seekAnswer(text, cursor, limit)
	if !ok {
		return domain.QuestionRecord{}, 0, "missing answer"
	}
	options[3] = strings.TrimSpace(text[cursor:lineEnd])

	if question == "" {
		return domain.QuestionRecord{}, 0, "empty question"
	}

	record, ok := domain.NewQuestionRecord(question, options, letter)
	if !ok {
		return domain.QuestionRecord{}, 0, "unknown answer letter"
	}
	return record, end, ""
}

// seekLineMarker finds the first line break in text[from:limit] that is followed,
// after optional whitespace, by marker. It returns the offset of that line break
// and the offset just past the marker.
func seekLineMarker(text string, from, limit int, marker string) (int, int, bool) {
	for i := from; i < limit; i++ {
		if text[i] != '\n' {
			continue
		}
		j := skipSpace(text, i+1, limit)
		if strings.HasPrefix(text[j:limit], marker) {
			return i, j + len(marker), true
		}
	}
	return 0, 0, false
}

// seekAnswer finds the first "Answer:" line in text[from:limit] whose marker is
// followed, after optional whitespace, by a letter a-d. It returns the offset of
// the preceding line break, the lower-cased letter and the offset past it.
func seekAnswer(text string, from, limit int) (int, string, int, bool) {
	for i := from; i < limit; i++ {
		if text[i] != '\n' {
			continue
		}
		j := skipSpace(text, i+1, limit)
		if !strings.HasPrefix(text[j:limit], answerMarker) {
			continue
		}
		k := skipSpace(text, j+len(answerMarker), limit)
		if k < limit && isOptionLetter(text[k]) {
			return i, strings.ToLower(text[k : k+1]), k + 1, true
		}
	}
	return 0, "", 0, false
}

func skipSpace(text string, from, limit int) int {
	i := from
	for i < limit {
		r, size := utf8.DecodeRuneInString(text[i:limit])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isOptionLetter(b byte) bool {
	switch b {
	case 'a', 'b', 'c', 'd', 'A', 'B', 'C', 'D':
		return true
	}
	return false
}
