// Package server exposes the journal's charts over an HTTP JSON API.
package server

import (
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
	"github.com/Snowbotx9/ledger-obsidian-traveller/date"
)

// Service computes chart data from a journal file and caches the results.
type Service struct {
	journalFile     string
	settings        *ledger.Settings
	cacheMu         sync.RWMutex
	cache           *CachedData
	cacheRefreshing bool
}

// SummaryData is the summary response payload: the balances on the
// newest transaction date.
type SummaryData struct {
	TotalAssets      ledger.Amount `json:"totalAssets"`
	TotalLiabilities ledger.Amount `json:"totalLiabilities"`
	NetWorth         ledger.Amount `json:"netWorth"`
}

// CachedData holds everything computed from one read of the journal file.
type CachedData struct {
	Journal     *ledger.Journal
	Accounts    []string
	First, Last date.Date
	Buckets     []string
	Balances    ledger.BalanceMap
	NetWorth    ledger.ChartData
	Summary     SummaryData
	LastRefresh time.Time
}

// NewService creates a service reading from the given journal file. The cache
// starts cold; call RebuildCache to warm it.
func NewService(journalFile string, settings *ledger.Settings) *Service {
	return &Service{journalFile: journalFile, settings: settings}
}

// RebuildCache re-reads the journal file and recomputes all chart data.
func (s *Service) RebuildCache() error {
	s.cacheMu.Lock()
	if s.cacheRefreshing {
		s.cacheMu.Unlock()
		return errors.New("refresh already in progress")
	}
	s.cacheRefreshing = true
	s.cacheMu.Unlock()

	defer func() {
		s.cacheMu.Lock()
		s.cacheRefreshing = false
		s.cacheMu.Unlock()
	}()

	f, err := os.Open(s.journalFile)
	if err != nil {
		return err
	}
	defer f.Close()

	journal, err := ledger.DecodeJournal(f)
	if err != nil {
		return err
	}

	first, last := journal.OldestTransactionDate(), journal.NewestTransactionDate()
	buckets := ledger.BucketNames(date.Daily, first, last)
	dense := journal.DailyBalances(first, last)
	universe := journal.AccountNames()
	networth := ledger.NetWorthSeries(dense, buckets, s.settings)

	summary := SummaryData{}
	if len(buckets) > 0 {
		today := dense[buckets[len(buckets)-1]]
		for _, name := range ledger.Descendants(universe, s.settings.AssetAccountsPrefix) {
			summary.TotalAssets = summary.TotalAssets.Add(today[name])
		}
		for _, name := range ledger.Descendants(universe, s.settings.LiabilityAccountsPrefix) {
			summary.TotalLiabilities = summary.TotalLiabilities.Add(today[name])
		}
		summary.NetWorth = summary.TotalAssets.Add(summary.TotalLiabilities)
	}

	newCache := &CachedData{
		Journal:     journal,
		Accounts:    ledger.CompressAccountPaths(universe),
		First:       first,
		Last:        last,
		Buckets:     buckets,
		Balances:    dense,
		NetWorth:    networth,
		Summary:     summary,
		LastRefresh: time.Now(),
	}

	s.cacheMu.Lock()
	s.cache = newCache
	s.cacheMu.Unlock()

	return nil
}

// getCache safely returns the cached data.
func (s *Service) getCache() (*CachedData, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	if s.cache == nil {
		return nil, false
	}
	return s.cache, true
}

// Router builds the gin engine serving the API.
func (s *Service) Router() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/networth", s.HandleNetWorth)
		api.GET("/balance", s.HandleBalance)
		api.GET("/delta", s.HandleDelta)
		api.GET("/accounts", s.HandleAccounts)
		api.GET("/summary", s.HandleSummary)
		api.GET("/settings", s.HandleGetSettings)
		api.GET("/cache/status", s.HandleCacheStatus)
		api.POST("/cache/refresh", s.HandleCacheRefresh)
	}

	return router
}

// HandleNetWorth returns the daily net worth series as JSON.
func (s *Service) HandleNetWorth(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		c.JSON(http.StatusAccepted, gin.H{"message": "cache empty; refresh required", "needsRefresh": true})
		return
	}
	c.JSON(http.StatusOK, cache.NetWorth)
}

// HandleBalance returns the daily balance series of the account named in the
// "account" query parameter, descendants included.
func (s *Service) HandleBalance(c *gin.Context) {
	account := c.Query("account")
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account query parameter is required"})
		return
	}

	cache, ok := s.getCache()
	if !ok {
		c.JSON(http.StatusAccepted, gin.H{"message": "cache empty; refresh required", "needsRefresh": true})
		return
	}

	series := ledger.AccountBalanceSeries(cache.Balances, cache.Buckets, account, cache.Journal.AccountNames())
	c.JSON(http.StatusOK, series)
}

// HandleDelta returns the day-over-day change series of the account named in
// the "account" query parameter.
func (s *Service) HandleDelta(c *gin.Context) {
	account := c.Query("account")
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account query parameter is required"})
		return
	}

	cache, ok := s.getCache()
	if !ok {
		c.JSON(http.StatusAccepted, gin.H{"message": "cache empty; refresh required", "needsRefresh": true})
		return
	}

	// Roll one day early so the first delta diffs against a real balance.
	before := cache.First.Add(-1)
	dense := cache.Journal.DailyBalances(before, cache.Last)
	series := ledger.AccountDeltaSeries(dense, cache.Buckets, account, cache.Journal.AccountNames(), ledger.Key(before))
	c.JSON(http.StatusOK, series)
}

// HandleAccounts returns the compressed account list as JSON.
func (s *Service) HandleAccounts(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		c.JSON(http.StatusAccepted, gin.H{"message": "cache empty; refresh required", "needsRefresh": true})
		return
	}
	c.JSON(http.StatusOK, cache.Accounts)
}

// HandleSummary returns the latest asset, liability and net worth totals.
func (s *Service) HandleSummary(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		c.JSON(http.StatusAccepted, gin.H{"message": "cache empty; refresh required", "needsRefresh": true})
		return
	}
	c.JSON(http.StatusOK, cache.Summary)
}

// HandleGetSettings returns the current application settings.
func (s *Service) HandleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings)
}

// HandleCacheStatus returns cache metadata.
func (s *Service) HandleCacheStatus(c *gin.Context) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	if s.cache == nil {
		c.JSON(http.StatusOK, gin.H{
			"hasCache":     false,
			"inProgress":   s.cacheRefreshing,
			"needsRefresh": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasCache":    true,
		"inProgress":  s.cacheRefreshing,
		"lastRefresh": s.cache.LastRefresh,
	})
}

// HandleCacheRefresh triggers a rebuild of the cached data.
func (s *Service) HandleCacheRefresh(c *gin.Context) {
	if err := s.RebuildCache(); err != nil {
		if err.Error() == "refresh already in progress" {
			c.JSON(http.StatusAccepted, gin.H{"message": "refresh already in progress", "inProgress": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cache rebuilt", "lastRefresh": time.Now()})
}
