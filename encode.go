package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// lineCmd is a specialized struct to read a line before its kind is known.
type lineCmd struct {
	Kind    LineKind `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Account string   `json:"account,omitempty"`
	Amount  Amount   `json:"amount,omitempty"`
}

// txCmd is a specialized struct for decoding one JSONL line.
type txCmd struct {
	Date  date.Date `json:"date"`
	Payee string    `json:"payee,omitempty"`
	Lines []lineCmd `json:"lines"`
}

// MarshalJSON implements the json.Marshaler interface for Comment.
func (c Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind LineKind `json:"kind"`
		Text string   `json:"text,omitempty"`
	}{LineComment, c.Text})
}

// MarshalJSON implements the json.Marshaler interface for Posting.
func (p Posting) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    LineKind `json:"kind"`
		Account string   `json:"account"`
		Amount  Amount   `json:"amount"`
	}{LinePosting, p.Account, p.Amount})
}

// DecodeJournal decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a sorted Journal.
//
// A line entry without an account is decoded as a comment, whatever its
// declared kind: the engine downstream is total over well-formed
// transactions, so shape problems degrade to no-ops here rather than
// surfacing later.
func DecodeJournal(r io.Reader) (*Journal, error) {
	journal := NewJournal()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var temp txCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(lineBytes), err)
		}

		tx := Transaction{Date: temp.Date, Payee: temp.Payee}
		for _, line := range temp.Lines {
			if line.Kind == LinePosting && line.Account != "" {
				tx.Lines = append(tx.Lines, Posting{Account: line.Account, Amount: line.Amount})
				continue
			}
			tx.Lines = append(tx.Lines, Comment{Text: line.Text})
		}
		journal.Append(tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return journal, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(struct {
		Date  date.Date `json:"date"`
		Payee string    `json:"payee,omitempty"`
		Lines []Line    `json:"lines"`
	}{tx.Date, tx.Payee, tx.Lines})
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeJournal persists the journal to an io.Writer in canonical JSONL
// format, one transaction per line in chronological order.
func EncodeJournal(w io.Writer, journal *Journal) error {
	journal.stableSort()
	for _, tx := range journal.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
