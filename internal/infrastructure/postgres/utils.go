package postgres

import (
	"errors"
	"strings"
	"unicode"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dialect genera SQL con placeholders $n para las consultas dinámicas.
var dialect = goqu.Dialect("postgres")

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isFKViolation verifica si un error es una violación de llave foránea (23503).
func isFKViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// SearchKey normaliza texto para búsqueda: minúsculas y sin tildes ("Válvula" -> "valvula").
func SearchKey(parts ...string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.Join(parts, " "))
	if err != nil {
		out = strings.Join(parts, " ")
	}
	return strings.ToLower(strings.TrimSpace(out))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains arma un patrón LIKE "contiene" con \ como escape (el default de PostgreSQL).
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
