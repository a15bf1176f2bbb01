package docstore

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Op is a declarative filter operator. Filters address document fields by
// name; no query language crosses this boundary.
type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpIn       Op = "in"       // value must be []string
	OpContains Op = "contains" // case-insensitive substring
	OpHasRef   Op = "hasRef"   // value is an id contained in an array field
)

type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

type Sort struct {
	Field   string
	Desc    bool
	Numeric bool
}

type Query struct {
	Filters []Filter
	Sort    []Sort
	Page    int
	Limit   int
}

var comparisons = map[Op]string{
	OpEq:  "=",
	OpNe:  "<>",
	OpGt:  ">",
	OpGte: ">=",
	OpLt:  "<",
	OpLte: "<=",
}

// validField guards the identifiers interpolated into SQL. Callers pass
// literal field names, but sort/filter fields can originate from query
// strings upstream.
func validField(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !ok {
			return false
		}
	}
	return true
}

// buildWhere renders the filter list into a WHERE fragment. args already
// holds the collection name; placeholders continue from there.
func buildWhere(filters []Filter, args []interface{}) (string, []interface{}, error) {
	var sb strings.Builder

	for _, f := range filters {
		if !validField(f.Field) {
			return "", nil, fmt.Errorf("invalid filter field %q", f.Field)
		}
		next := len(args) + 1

		switch f.Op {
		case OpIn:
			ids, ok := f.Value.([]string)
			if !ok {
				return "", nil, fmt.Errorf("filter %s: in operator needs []string", f.Field)
			}
			fmt.Fprintf(&sb, " AND doc->>'%s' = ANY($%d)", f.Field, next)
			args = append(args, ids)

		case OpContains:
			fmt.Fprintf(&sb, " AND doc->>'%s' ILIKE '%%' || $%d || '%%'", f.Field, next)
			args = append(args, fmt.Sprint(f.Value))

		case OpHasRef:
			fmt.Fprintf(&sb, " AND COALESCE(doc->'%s', '[]'::jsonb) ? $%d", f.Field, next)
			args = append(args, fmt.Sprint(f.Value))

		default:
			cmp, ok := comparisons[f.Op]
			if !ok {
				return "", nil, fmt.Errorf("filter %s: unknown operator %q", f.Field, f.Op)
			}
			fmt.Fprintf(&sb, " AND %s %s $%d", fieldExpr(f.Field, f.Value), cmp, next)
			args = append(args, filterArg(f.Value))
		}
	}

	return sb.String(), args, nil
}

// fieldExpr casts the JSONB text projection to match the filter value's type.
func fieldExpr(field string, value interface{}) string {
	switch value.(type) {
	case int, int32, int64, float32, float64, decimal.Decimal:
		return fmt.Sprintf("(doc->>'%s')::numeric", field)
	case bool:
		return fmt.Sprintf("(doc->>'%s')::boolean", field)
	default:
		return fmt.Sprintf("doc->>'%s'", field)
	}
}

func filterArg(value interface{}) interface{} {
	if d, ok := value.(decimal.Decimal); ok {
		return d.String()
	}
	return value
}

func buildOrderBy(sorts []Sort) string {
	if len(sorts) == 0 {
		return " ORDER BY created_at DESC"
	}

	parts := make([]string, 0, len(sorts))
	for _, s := range sorts {
		if !validField(s.Field) {
			continue
		}
		var expr string
		switch s.Field {
		case "createdAt":
			expr = "created_at"
		case "updatedAt":
			expr = "updated_at"
		default:
			if s.Numeric {
				expr = fmt.Sprintf("(doc->>'%s')::numeric", s.Field)
			} else {
				expr = fmt.Sprintf("doc->>'%s'", s.Field)
			}
		}
		if s.Desc {
			expr += " DESC"
		}
		parts = append(parts, expr)
	}

	if len(parts) == 0 {
		return " ORDER BY created_at DESC"
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}
