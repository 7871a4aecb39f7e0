package finance

import (
	"sort"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// AggregateByCategory groups expense transactions by category.
//
// Each group carries its total, its share of the overall total and its row
// count. Groups are sorted by total, largest first; equal totals keep the
// order in which their category was first seen. Income rows are skipped.
func AggregateByCategory(transactions []domain.Transaction) []domain.CategoryExpense {
	index := make(map[string]int)
	groups := make([]domain.CategoryExpense, 0)
	total := decimal.Zero

	for _, tx := range transactions {
		if tx.Type != domain.TransactionExpense {
			continue
		}
		i, ok := index[tx.CategoryID]
		if !ok {
			i = len(groups)
			index[tx.CategoryID] = i
			groups = append(groups, domain.CategoryExpense{
				CategoryID:   tx.CategoryID,
				CategoryName: CategoryName(tx),
				Total:        decimal.Zero,
			})
		}
		groups[i].Total = groups[i].Total.Add(tx.Amount)
		groups[i].TransactionCount++
		total = total.Add(tx.Amount)
	}

	for i := range groups {
		groups[i].Percentage = Percent(groups[i].Total, total)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total.GreaterThan(groups[b].Total)
	})
	return groups
}

// CategoryName resolves the display name of a transaction's category.
func CategoryName(tx domain.Transaction) string {
	if tx.CategoryName == "" {
		return domain.UncategorizedLabel
	}
	return tx.CategoryName
}
