package ledger

import (
	"testing"
)

func TestBalanceChanges_sumsSameDay(t *testing.T) {
	// Two transactions on the same day touching the same account net out.
	txs := []Transaction{
		tx(day(150), post("Assets:Bank", 10)),
		tx(day(150), post("Assets:Bank", -3)),
	}

	changes := BalanceChanges(txs)

	if len(changes) != 1 {
		t.Fatalf("expected a single day entry, got %d", len(changes))
	}
	got := changes["2023.150"]["Assets:Bank"]
	if !got.Equal(A(7)) {
		t.Errorf("net change = %s, want 7", got)
	}
}

func TestBalanceChanges_skipsComments(t *testing.T) {
	txs := []Transaction{
		tx(day(150),
			Comment{Text: "opening note"},
			post("Assets:Bank", 10),
			Comment{Text: "closing note"},
		),
	}

	changes := BalanceChanges(txs)

	if len(changes["2023.150"]) != 1 {
		t.Errorf("comments must not produce change entries: %v", changes["2023.150"])
	}
}

func TestBalanceChanges_multiplePostingsPerTransaction(t *testing.T) {
	txs := []Transaction{
		tx(day(150),
			post("Expenses:Food", 25),
			post("Assets:Bank", -25),
		),
	}

	changes := BalanceChanges(txs)

	if got := changes["2023.150"]["Expenses:Food"]; !got.Equal(A(25)) {
		t.Errorf("Expenses:Food change = %s, want 25", got)
	}
	if got := changes["2023.150"]["Assets:Bank"]; !got.Equal(A(-25)) {
		t.Errorf("Assets:Bank change = %s, want -25", got)
	}
}

func TestBalanceChanges_empty(t *testing.T) {
	if got := BalanceChanges(nil); len(got) != 0 {
		t.Errorf("BalanceChanges(nil) = %v, want empty", got)
	}
}

func TestDailyBalances_forwardFill(t *testing.T) {
	accounts := []string{"Assets:Bank", "Liabilities:Credit"}
	changes := BalanceChanges([]Transaction{
		tx(day(150), post("Assets:Bank", 100)),
		tx(day(152), post("Assets:Bank", -30), post("Liabilities:Credit", -10)),
	})

	dense := DailyBalances(accounts, changes, day(149), day(154))

	testCases := []struct {
		key     string
		account string
		want    float64
	}{
		// Seeded at zero on the day before the range; day 149 has no change.
		{"2023.149", "Assets:Bank", 0},
		{"2023.149", "Liabilities:Credit", 0},
		{"2023.150", "Assets:Bank", 100},
		// Quiet day carries the previous balance forward.
		{"2023.151", "Assets:Bank", 100},
		{"2023.151", "Liabilities:Credit", 0},
		{"2023.152", "Assets:Bank", 70},
		{"2023.152", "Liabilities:Credit", -10},
		{"2023.153", "Assets:Bank", 70},
		{"2023.154", "Liabilities:Credit", -10},
	}
	for _, tc := range testCases {
		got := dense[tc.key][tc.account]
		if !got.Equal(A(tc.want)) {
			t.Errorf("dense[%s][%s] = %s, want %v", tc.key, tc.account, got, tc.want)
		}
	}

	// Every calendar day in range must be present, transactions or not.
	if len(dense) != 6 {
		t.Errorf("dense map covers %d days, want 6", len(dense))
	}
}

// TestDailyBalances_quietDayAliasing pins the no-copy optimization: a day
// without changes shares the previous day's map rather than cloning it.
func TestDailyBalances_quietDayAliasing(t *testing.T) {
	accounts := []string{"Assets:Bank"}
	changes := BalanceChanges([]Transaction{
		tx(day(150), post("Assets:Bank", 100)),
	})

	dense := DailyBalances(accounts, changes, day(150), day(152))

	d150 := dense["2023.150"]
	d151 := dense["2023.151"]
	d152 := dense["2023.152"]
	d151["Assets:Bank"] = A(999)
	if !d152["Assets:Bank"].Equal(A(999)) || !d150["Assets:Bank"].Equal(A(999)) {
		t.Errorf("quiet days are expected to alias the previous day's map")
	}
}

func TestDailyBalances_deltaBeforeRangeIgnored(t *testing.T) {
	accounts := []string{"Assets:Bank"}
	changes := BalanceChanges([]Transaction{
		tx(day(100), post("Assets:Bank", 500)), // before the rolled range
		tx(day(151), post("Assets:Bank", 10)),
	})

	dense := DailyBalances(accounts, changes, day(150), day(152))

	if got := dense["2023.150"]["Assets:Bank"]; !got.Equal(A(0)) {
		t.Errorf("balance on first day = %s, want 0 (history before first date is invisible)", got)
	}
	if got := dense["2023.152"]["Assets:Bank"]; !got.Equal(A(10)) {
		t.Errorf("balance = %s, want 10", got)
	}
}

func TestDailyBalances_emptyRange(t *testing.T) {
	dense := DailyBalances([]string{"Assets"}, ChangeMap{}, day(10), day(5))
	if len(dense) != 0 {
		t.Errorf("DailyBalances on inverted range = %v, want empty", dense)
	}
}
