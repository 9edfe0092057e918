// Package journal locates transactions inside plain-text journal files and
// splices new entries into them at the date-ordered position.
//
// The scanner is deliberately not a grammar. It recognizes dated transaction
// headers and their indented posting lines, recording byte spans so the
// inserter can splice around them without reformatting a single untouched
// byte. Full syntax validation belongs to an external checker.
package journal

import (
	"regexp"
	"strings"
	"time"
)

// Transaction is one dated entry found in journal text. The span covers the
// header line through the last indented continuation line, including the
// trailing newline when present; text[Span.Start:Span.End] reproduces the
// entry verbatim.
type Transaction struct {
	Date      time.Time
	Flag      string
	Payee     string
	Narration string
	Accounts  []string
	Line      int // 1-indexed header line
	Span      Span
}

// Span is a half-open byte range [Start, End) into the scanned text.
type Span struct {
	Start int
	End   int
}

var (
	// headerPattern matches a transaction header: date, flag, description.
	// Other dated directives (open, balance, ...) have a keyword instead of
	// a flag and are not transactions.
	headerPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(\*|!|txn)\s*(.*)$`)

	// datedPattern matches any line starting with a date; used to tell
	// non-transaction directives apart from stray indented lines.
	datedPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s`)

	// accountPattern extracts the account from an indented posting line.
	accountPattern = regexp.MustCompile(`^[ \t]+((?:Assets|Liabilities|Equity|Income|Expenses)(?::[A-Z0-9][A-Za-z0-9-]*)+)`)

	// quotedPattern captures the quoted strings on a header line.
	quotedPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// Scan extracts the ordered transaction list from journal text. It fails
// with *ScanError when the text cannot be segmented into entries, such as a
// posting continuation appearing before any transaction header.
func Scan(text string) ([]Transaction, error) {
	var txns []Transaction
	var current *Transaction

	offset := 0
	line := 0
	for offset < len(text) {
		line++

		end := strings.IndexByte(text[offset:], '\n')
		var next int
		if end < 0 {
			end = len(text)
			next = end
		} else {
			end += offset
			next = end + 1
		}
		content := text[offset:end]

		switch {
		case headerPattern.MatchString(content):
			m := headerPattern.FindStringSubmatch(content)

			// Dates in headers are already validated by the pattern shape;
			// reject impossible calendar dates here.
			date, err := time.Parse("2006-01-02", m[1])
			if err != nil {
				return nil, &ScanError{Line: line, Message: "invalid date " + m[1]}
			}

			payee, narration := splitDescription(m[3])
			txns = append(txns, Transaction{
				Date:      date,
				Flag:      m[2],
				Payee:     payee,
				Narration: narration,
				Line:      line,
				Span:      Span{Start: offset, End: next},
			})
			current = &txns[len(txns)-1]

		case datedPattern.MatchString(content):
			// Another dated directive; ends any open transaction.
			current = nil

		case strings.TrimSpace(content) == "":
			current = nil

		case content[0] == ' ' || content[0] == '\t':
			if current == nil {
				return nil, &ScanError{Line: line, Message: "indented line outside a transaction"}
			}
			if m := accountPattern.FindStringSubmatch(content); m != nil {
				current.Accounts = append(current.Accounts, m[1])
			}
			current.Span.End = next

		default:
			// Top-level non-dated content (options, comments); ends any
			// open transaction.
			current = nil
		}

		offset = next
	}

	return txns, nil
}

// splitDescription parses the quoted payee/narration pair from the header
// remainder. Two quoted strings mean payee then narration; one means
// narration only.
func splitDescription(rest string) (payee, narration string) {
	matches := quotedPattern.FindAllStringSubmatch(rest, 2)
	switch len(matches) {
	case 2:
		return unescapeString(matches[0][1]), unescapeString(matches[1][1])
	case 1:
		return "", unescapeString(matches[0][1])
	default:
		return "", ""
	}
}

// unescapeString reverses the quoting applied to journal strings.
func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))
	escaped := false
	for _, c := range s {
		if escaped {
			buf.WriteRune(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		buf.WriteRune(c)
	}

	return buf.String()
}
