package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Pagination defaults for task listing.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50

	// maxPage keeps (page-1)*limit well inside int range.
	maxPage = math.MaxInt32
)

// TaskListParams holds the raw list query parameters. A nil field means the
// parameter was absent from the request.
type TaskListParams struct {
	Completed *string
	Priority  *string
	Search    *string
	Page      *string
	Limit     *string
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks []*domain.Task
	Total int
	Page  int
	Limit int
	Pages int
}

// BuildTaskQuery turns raw list parameters into a typed filter for
// ownerID's tasks. It never fails: malformed paging values fall back to
// their defaults and an oversized limit is capped at MaxLimit.
func BuildTaskQuery(ownerID uuid.UUID, p TaskListParams) store.TaskQuery {
	q := store.TaskQuery{OwnerID: ownerID}

	if p.Completed != nil {
		completed := *p.Completed == "true"
		q.Completed = &completed
	}
	if p.Priority != nil && *p.Priority != "" {
		priority := domain.Priority(*p.Priority)
		q.Priority = &priority
	}
	if p.Search != nil && *p.Search != "" {
		search := *p.Search
		q.Search = &search
	}

	page := positiveOrDefault(p.Page, DefaultPage)
	if page > maxPage {
		page = maxPage
	}
	limit := positiveOrDefault(p.Limit, DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}

	q.Limit = limit
	q.Offset = (page - 1) * limit
	return q
}

// PageOf returns the 1-based page number q addresses.
func PageOf(q store.TaskQuery) int {
	if q.Limit <= 0 {
		return DefaultPage
	}
	return q.Offset/q.Limit + 1
}

// PageCount returns ceil(total/limit).
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func positiveOrDefault(raw *string, def int) int {
	if raw == nil {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}
