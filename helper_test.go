package ledger

import (
	"time"

	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// day is a helper for tests to name a calendar day by its ordinal in 2023.
func day(ordinal int) date.Date { return date.New(2023, time.January, ordinal) }

// post is a helper for tests to create an account line from a const amount.
func post(account string, v float64) Posting { return Posting{Account: account, Amount: A(v)} }

// tx is a helper for tests to create a transaction with no payee.
func tx(on date.Date, lines ...Line) Transaction { return Transaction{Date: on, Lines: lines} }
