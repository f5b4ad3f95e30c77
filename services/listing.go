package services

import (
	"strings"

	"gorm.io/gorm"
)

// ListQuery carries the common list parameters (sort/limit/page) shared
// by every content store.
type ListQuery struct {
	Sort  string
	Limit int
	Page  int
}

const defaultPageSize = 20

// Normalize fills in defaults and clamps nonsense values.
func (q ListQuery) Normalize() ListQuery {
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return q
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pages computes the page count for a total.
func (q ListQuery) Pages(total int64) int {
	if total == 0 {
		return 0
	}
	pages := int(total) / q.Limit
	if int(total)%q.Limit != 0 {
		pages++
	}
	return pages
}

// orderClause maps an API sort key ("-createdAt", "order", ...) onto a
// SQL ORDER BY using the per-resource whitelist. Unknown keys fall back
// to newest-first rather than erroring.
func orderClause(sort string, allowed map[string]string) string {
	desc := false
	key := strings.TrimSpace(sort)
	if strings.HasPrefix(key, "-") {
		desc = true
		key = key[1:]
	}
	column, ok := allowed[key]
	if !ok {
		return "created_at DESC"
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// applyListQuery attaches ordering and pagination to a gorm query.
func applyListQuery(db *gorm.DB, q ListQuery, allowed map[string]string) *gorm.DB {
	return db.Order(orderClause(q.Sort, allowed)).Offset(q.Offset()).Limit(q.Limit)
}
