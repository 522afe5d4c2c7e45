// Package queryscope builds the parameterized predicate, ORDER BY and
// LIMIT/OFFSET used by listing queries. Sortable columns and filter
// fields are declared as closed allow-lists per listing; caller input is
// only ever used as a lookup key into those lists, never concatenated
// into SQL. One Scope renders both the count and the fetch statement
// from the same predicate, so the two cannot drift apart.
package queryscope

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPageSize is fixed and not caller-overridable.
const DefaultPageSize = 30

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// NormalizeDirection restricts a raw direction to asc or desc. Anything
// else (empty string, "default", garbage) falls back to the listing's
// own default direction, not to asc generically.
func NormalizeDirection(raw string, fallback Direction) Direction {
	switch Direction(raw) {
	case Asc:
		return Asc
	case Desc:
		return Desc
	default:
		return fallback
	}
}

// NextDirection implements the two-state sort toggle: clicking the
// column already sorted on flips asc and desc, clicking any other
// column starts at asc. There is no third "unsorted" state.
func NextDirection(prevColumn string, prevDir Direction, column string) Direction {
	if column != prevColumn {
		return Asc
	}
	if prevDir == Asc {
		return Desc
	}
	return Asc
}

// Field is one allow-listed filter: a trusted column expression and the
// operator applied to the bound value.
type Field struct {
	Column string
	Op     string // "=", ">=", "<=", "ILIKE"
}

// Definition declares the allow-lists and defaults for one listing.
type Definition struct {
	Filters     map[string]Field
	SortColumns map[string]string
	DefaultSort string // key into SortColumns
	DefaultDir  Direction
	PageSize    int
}

// Query carries the caller-requested filters, sort and page.
type Query struct {
	Filters map[string]string
	Sort    string
	Dir     string
	Page    int
}

type cond struct {
	expr string // uses ? for each bound argument
	args []interface{}
}

// Scope is a safe (predicate, order, limit, offset) tuple for one
// listing call.
type Scope struct {
	conds     []cond
	matchNone bool
	order     string
	page      int
	pageSize  int
	offset    int
}

// Build resolves the caller query against the allow-lists. Unknown
// filter keys are silently dropped; the sort column is matched
// case-sensitively and falls back to the listing default.
func (d Definition) Build(q Query) *Scope {
	pageSize := d.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &Scope{page: q.Page, pageSize: pageSize}

	// Deterministic predicate order regardless of map iteration.
	keys := make([]string, 0, len(q.Filters))
	for key := range q.Filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := d.Filters[key]
		if !ok {
			continue
		}
		value := q.Filters[key]
		if value == "" {
			continue
		}
		if field.Op == "ILIKE" {
			value = "%" + value + "%"
		}
		s.Where(field.Column+" "+field.Op+" ?", value)
	}

	column, ok := d.SortColumns[q.Sort]
	if !ok {
		column = d.SortColumns[d.DefaultSort]
	}
	dir := NormalizeDirection(q.Dir, d.DefaultDir)
	s.order = column + " " + strings.ToUpper(string(dir))

	return s
}

// Where appends a predicate condition. Each ? in expr binds one of args
// as a query parameter.
func (s *Scope) Where(expr string, args ...interface{}) {
	s.conds = append(s.conds, cond{expr: expr, args: args})
}

// WhereOwners restricts rows to the given owner identifiers against the
// trusted column expressions. An empty owner set fails closed: the
// predicate matches zero rows, never "no filter".
func (s *Scope) WhereOwners(owners []string, columns ...string) {
	if len(owners) == 0 {
		s.MatchNone()
		return
	}
	exprs := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		exprs = append(exprs, column+" = ANY(?)")
		args = append(args, owners)
	}
	s.Where("("+strings.Join(exprs, " OR ")+")", args...)
}

// MatchNone forces the predicate to match zero rows.
func (s *Scope) MatchNone() {
	s.matchNone = true
}

// ClampPage resolves the requested page against the authoritative row
// count: page is clamped to [1, max(1, ceil(total/pageSize))].
func (s *Scope) ClampPage(total int64) {
	pages := TotalPages(total, s.pageSize)
	page := s.page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	s.page = page
	s.offset = (page - 1) * s.pageSize
}

func (s *Scope) Page() int {
	return s.page
}

func (s *Scope) PageSize() int {
	return s.pageSize
}

func (s *Scope) Order() string {
	return s.order
}

// TotalPages reports max(1, ceil(total/pageSize)).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// whereClause renders the shared predicate with $n placeholders.
func (s *Scope) whereClause() (string, []interface{}) {
	if s.matchNone {
		return " WHERE FALSE", nil
	}
	if len(s.conds) == 0 {
		return "", nil
	}

	var clause strings.Builder
	var args []interface{}
	n := 0

	exprs := make([]string, 0, len(s.conds))
	for _, c := range s.conds {
		var expr strings.Builder
		for _, r := range c.expr {
			if r == '?' {
				n++
				fmt.Fprintf(&expr, "$%d", n)
				continue
			}
			expr.WriteRune(r)
		}
		exprs = append(exprs, expr.String())
		args = append(args, c.args...)
	}

	clause.WriteString(" WHERE ")
	clause.WriteString(strings.Join(exprs, " AND "))
	return clause.String(), args
}

// CountSQL renders the count statement over the shared predicate.
// base is the trusted "FROM ... JOIN ..." fragment.
func (s *Scope) CountSQL(base string) (string, []interface{}) {
	where, args := s.whereClause()
	return "SELECT COUNT(*) " + base + where, args
}

// SelectSQL renders the fetch statement over the same predicate as
// CountSQL, adding ORDER BY and LIMIT/OFFSET. ClampPage must have been
// called first so the offset is resolved.
func (s *Scope) SelectSQL(columns, base string) (string, []interface{}) {
	where, args := s.whereClause()
	n := len(args)
	sql := fmt.Sprintf("SELECT %s %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		columns, base, where, s.order, n+1, n+2)
	args = append(args, s.pageSize, s.offset)
	return sql, args
}
