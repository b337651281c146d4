package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

func TestSearchKey(t *testing.T) {
	assert.Equal(t, "valvula de presion", SearchKey("Válvula", "de PRESIÓN"))
	assert.Equal(t, "m-1", SearchKey("  M-1 "))
}

func TestHasCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))
	assert.False(t, isFKViolation(pgErr))
	assert.True(t, isFKViolation(errors.New("ERROR: violates foreign key (SQLSTATE 23503)")))
}

func TestLikeContains_EscapaComodines(t *testing.T) {
	assert.Equal(t, `%50\%\_a\\b%`, likeContains(`50%_a\b`))
	assert.Equal(t, "%valvula%", likeContains("valvula"))
}

func TestMaterialSearch_PatronLiteral(t *testing.T) {
	sql, args, err := materialSearch(repository.MaterialFilter{Search: "Tuerca_M8 100%"}).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, sql, `"search_key" LIKE $1`)
	require.Len(t, args, 1)
	assert.Equal(t, `%tuerca\_m8 100\%%`, args[0])
}

func TestMaterialSearch_SinFiltro(t *testing.T) {
	sql, args, err := materialSearch(repository.MaterialFilter{}).Prepared(true).ToSQL()
	require.NoError(t, err)
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}
