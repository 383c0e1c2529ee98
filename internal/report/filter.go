package report

import (
	"github.com/lttr/shell-aliases/internal/usage"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

type aliasNames []usage.AliasUsage

func (a aliasNames) String(i int) string { return a[i].Alias }
func (a aliasNames) Len() int            { return len(a) }

// Filter keeps the usages whose alias fuzzy-matches pattern. The ranking of
// the input is preserved. An empty pattern keeps everything.
func Filter(usages []usage.AliasUsage, pattern string) []usage.AliasUsage {
	if pattern == "" {
		return usages
	}

	matched := make(map[int]struct{})
	for _, match := range fuzzy.FindFrom(pattern, aliasNames(usages)) {
		matched[match.Index] = struct{}{}
	}

	return lo.Filter(usages, func(_ usage.AliasUsage, index int) bool {
		_, ok := matched[index]
		return ok
	})
}
