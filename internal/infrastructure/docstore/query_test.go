package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere(t *testing.T) {
	args := []interface{}{"products"}

	where, args, err := buildWhere([]Filter{
		{Field: "category", Op: OpEq, Value: "Prints"},
		{Field: "featured", Op: OpEq, Value: true},
		{Field: "price", Op: OpGte, Value: 100},
		{Field: "name", Op: OpContains, Value: "poster"},
	}, args)
	require.NoError(t, err)

	assert.Equal(t,
		" AND doc->>'category' = $2"+
			" AND (doc->>'featured')::boolean = $3"+
			" AND (doc->>'price')::numeric >= $4"+
			" AND doc->>'name' ILIKE '%' || $5 || '%'",
		where)
	assert.Len(t, args, 5)
}

func TestBuildWhereInOperator(t *testing.T) {
	args := []interface{}{"artists"}

	where, args, err := buildWhere([]Filter{
		{Field: "nationality", Op: OpIn, Value: []string{"French", "Dutch"}},
	}, args)
	require.NoError(t, err)

	assert.Equal(t, " AND doc->>'nationality' = ANY($2)", where)
	assert.Equal(t, []string{"French", "Dutch"}, args[1])
}

func TestBuildWhereInOperatorRequiresStringSlice(t *testing.T) {
	_, _, err := buildWhere([]Filter{
		{Field: "nationality", Op: OpIn, Value: 42},
	}, []interface{}{"artists"})

	assert.Error(t, err)
}

func TestBuildWhereHasRef(t *testing.T) {
	where, args, err := buildWhere([]Filter{
		{Field: "exhibitions", Op: OpHasRef, Value: "abc-123"},
	}, []interface{}{"artworks"})
	require.NoError(t, err)

	assert.Equal(t, " AND COALESCE(doc->'exhibitions', '[]'::jsonb) ? $2", where)
	assert.Equal(t, "abc-123", args[1])
}

func TestBuildWhereRejectsBadFieldName(t *testing.T) {
	_, _, err := buildWhere([]Filter{
		{Field: "name'; DROP TABLE documents; --", Op: OpEq, Value: "x"},
	}, []interface{}{"products"})

	assert.Error(t, err)
}

func TestBuildOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY created_at DESC", buildOrderBy(nil))

	assert.Equal(t, " ORDER BY created_at", buildOrderBy([]Sort{{Field: "createdAt"}}))

	assert.Equal(t,
		" ORDER BY (doc->>'price')::numeric DESC, doc->>'name'",
		buildOrderBy([]Sort{
			{Field: "price", Desc: true, Numeric: true},
			{Field: "name"},
		}))

	// Malformed fields are dropped rather than interpolated.
	assert.Equal(t, " ORDER BY created_at DESC", buildOrderBy([]Sort{{Field: "price; --"}}))
}
