package ledger

import (
	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// LineKind is a typed string identifying the two line variants.
type LineKind string

const (
	LineComment LineKind = "comment"
	LinePosting LineKind = "posting"
)

// Line is one row in a transaction body. It is a closed variant with two
// cases, Comment and Posting, dispatched by type switch rather than by
// field inspection.
type Line interface {
	Kind() LineKind
}

// Comment is a line with no effect on any balance.
type Comment struct {
	Text string
}

func (Comment) Kind() LineKind { return LineComment }

// Posting moves Amount into the account at the given hierarchical path.
// Paths use ':' as segment separator, e.g. "Assets:Bank:Checking".
// Account names are taken verbatim; callers supply canonical, de-aliased paths.
type Posting struct {
	Account string
	Amount  Amount
}

func (Posting) Kind() LineKind { return LinePosting }

// Transaction is a dated, ordered sequence of lines.
type Transaction struct {
	Date  date.Date
	Payee string
	Lines []Line
}

// NewTransaction creates a transaction on the given day.
func NewTransaction(on date.Date, payee string, lines ...Line) Transaction {
	return Transaction{Date: on, Payee: payee, Lines: lines}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() date.Date { return t.Date }

// Postings returns the account lines of the transaction, skipping comments.
func (t Transaction) Postings() []Posting {
	var out []Posting
	for _, line := range t.Lines {
		if p, ok := line.(Posting); ok {
			out = append(out, p)
		}
	}
	return out
}
