package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
)

const testJournal = `{"date":"2023-05-29","payee":"Opening","lines":[{"kind":"posting","account":"Assets:Bank:Checking","amount":100},{"kind":"posting","account":"Equity:Opening","amount":-100}]}
{"date":"2023-05-30","payee":"Credit card","lines":[{"kind":"posting","account":"Liabilities:Card","amount":-40},{"kind":"posting","account":"Expenses:Food","amount":40}]}
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "journal.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(testJournal), 0o644))

	return NewService(path, ledger.DefaultSettings())
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestColdCacheAsksForRefresh(t *testing.T) {
	svc := newTestService(t)
	router := svc.Router()

	w := get(router, "/api/networth")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "needsRefresh")
}

func TestNetWorth(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	w := get(svc.Router(), "/api/networth")
	require.Equal(t, http.StatusOK, w.Code)

	var series []struct {
		X string          `json:"x"`
		Y json.RawMessage `json:"y"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 2)
	assert.Equal(t, "2023.149", series[0].X)
	assert.Equal(t, "100", string(series[0].Y))
	// Day two adds a -40 liability.
	assert.Equal(t, "60", string(series[1].Y))
}

func TestBalanceRequiresAccount(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	w := get(svc.Router(), "/api/balance")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBalanceIncludesDescendants(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	w := get(svc.Router(), "/api/balance?account=Assets")
	require.Equal(t, http.StatusOK, w.Code)

	var series []struct {
		X string          `json:"x"`
		Y json.RawMessage `json:"y"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 2)
	// Assets:Bank:Checking is counted under Assets.
	assert.Equal(t, "100", string(series[0].Y))
	assert.Equal(t, "100", string(series[1].Y))
}

func TestDelta(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	w := get(svc.Router(), "/api/delta?account=Liabilities:Card")
	require.Equal(t, http.StatusOK, w.Code)

	var series []struct {
		X string          `json:"x"`
		Y json.RawMessage `json:"y"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 2)
	assert.Equal(t, "0", string(series[0].Y))
	assert.Equal(t, "-40", string(series[1].Y))
}

func TestAccountsAreCompressed(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	w := get(svc.Router(), "/api/accounts")
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	// Assets and Assets:Bank have a single child each, so only the leaf shows.
	assert.Contains(t, accounts, "Assets:Bank:Checking")
	assert.NotContains(t, accounts, "Assets")
	assert.NotContains(t, accounts, "Assets:Bank")
}

func TestSummary(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	w := get(svc.Router(), "/api/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		TotalAssets      json.RawMessage `json:"totalAssets"`
		TotalLiabilities json.RawMessage `json:"totalLiabilities"`
		NetWorth         json.RawMessage `json:"netWorth"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "100", string(summary.TotalAssets))
	assert.Equal(t, "-40", string(summary.TotalLiabilities))
	assert.Equal(t, "60", string(summary.NetWorth))
}

func TestCacheRefreshPicksUpNewTransactions(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RebuildCache())

	extra := testJournal + `{"date":"2023-05-31","payee":"Salary","lines":[{"kind":"posting","account":"Assets:Bank:Checking","amount":500},{"kind":"posting","account":"Income:Salary","amount":-500}]}
`
	require.NoError(t, os.WriteFile(svc.journalFile, []byte(extra), 0o644))

	router := svc.Router()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cache/refresh", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(router, "/api/networth")
	require.Equal(t, http.StatusOK, w.Code)
	var series []struct {
		X string          `json:"x"`
		Y json.RawMessage `json:"y"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 3)
	assert.Equal(t, "560", string(series[2].Y))
}

func TestRebuildCacheMissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "nope.jsonl"), ledger.DefaultSettings())
	assert.Error(t, svc.RebuildCache())
}
