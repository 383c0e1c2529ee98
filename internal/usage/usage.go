// Package usage correlates shell aliases with command history to find when
// each alias was last invoked.
package usage

import (
	"database/sql"
	"slices"

	"github.com/lttr/shell-aliases/internal/aliases"
	"github.com/lttr/shell-aliases/internal/history"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AliasUsage is the last time an alias was seen as a command. LastUsed is
// invalid when the alias never appears in the history.
type AliasUsage struct {
	Alias    string
	LastUsed sql.NullTime
}

type Correlator struct {
	logger *zap.Logger
}

func NewCorrelator(logger *zap.Logger) *Correlator {
	return &Correlator{
		logger: logger,
	}
}

// Correlate returns one AliasUsage per distinct alias key, most recently used
// first and never-used aliases last.
//
// A record matches when its command equals the alias key exactly. The last
// matching record in the given order wins, so history must be supplied in
// chronological order for the result to mean "most recent".
func (c *Correlator) Correlate(listing aliases.Listing, records []history.Record) []AliasUsage {
	if !listing.Valid || records == nil {
		c.logger.Warn("there is not enough data to compute usage of aliases",
			zap.Bool("aliases_available", listing.Valid),
			zap.Bool("history_available", records != nil),
		)
		return []AliasUsage{}
	}

	keys := lo.Uniq(lo.Map(listing.Aliases, func(alias aliases.Alias, _ int) string {
		return alias.Key
	}))

	lastUsed := make(map[string]sql.NullTime, len(keys))
	for _, key := range keys {
		lastUsed[key] = sql.NullTime{}
	}
	for _, record := range records {
		if _, ok := lastUsed[record.Command]; ok {
			lastUsed[record.Command] = record.Time
		}
	}

	usages := lo.Map(keys, func(key string, _ int) AliasUsage {
		return AliasUsage{Alias: key, LastUsed: lastUsed[key]}
	})
	SortByLastUsed(usages)

	c.logger.Debug("correlated aliases with history",
		zap.Int("aliases", len(usages)),
		zap.Int("records", len(records)),
	)
	return usages
}

// SortByLastUsed orders usages most recent first. Entries without a time
// sink below every dated entry and keep their relative order.
func SortByLastUsed(usages []AliasUsage) {
	slices.SortStableFunc(usages, compareLastUsed)
}

func compareLastUsed(a, b AliasUsage) int {
	switch {
	case !a.LastUsed.Valid && !b.LastUsed.Valid:
		return 0
	case !b.LastUsed.Valid:
		return -1
	case !a.LastUsed.Valid:
		return 1
	}
	return b.LastUsed.Time.Compare(a.LastUsed.Time)
}
