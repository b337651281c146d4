// seed_catalog genera un script SQL para poblar material_master a partir de la
// exportación del ERP (CSV separado por ';', codificación ISO-8859-1).
//
// Uso: go run ./cmd/seed_catalog [ruta/materiales.csv]
// Por defecto busca materiales.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/900_seed_materials.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ilms-api/internal/infrastructure/postgres"
)

// columnas del CSV que se copian tal cual a material_master.
var columns = []string{
	"material_code",
	"material_name",
	"description",
	"sku",
	"ean_gtin",
	"upc",
	"country_of_origin",
	"type",
	"material_class",
	"material_group",
	"base_uom",
	"external_erp_code",
}

type material map[string]string

func main() {
	csvPath := "materiales.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseCatalog(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	script, err := renderSQL(rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "900_seed_materials.sql")
	if err := os.WriteFile(outPath, []byte(script), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir archivo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d materiales\n", outPath, len(rows))
}

// parseCatalog lee el CSV ya decodificado. La primera fila es el encabezado;
// material_code y material_name son obligatorias. Un código repetido gana la última fila.
func parseCatalog(r io.Reader) ([]material, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"material_code", "material_name"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("falta la columna %s", required)
		}
	}

	byCode := make(map[string]material)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		m := make(material, len(columns))
		for _, col := range columns {
			if i, ok := index[col]; ok && i < len(rec) {
				m[col] = strings.TrimSpace(rec[i])
			}
		}
		if m["material_code"] == "" || m["material_name"] == "" {
			continue
		}
		byCode[m["material_code"]] = m
	}

	codes := make([]string, 0, len(byCode))
	for c := range byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	out := make([]material, 0, len(codes))
	for _, c := range codes {
		out = append(out, byCode[c])
	}
	return out, nil
}

// renderSQL arma un único INSERT ... ON CONFLICT para que el script sea idempotente.
func renderSQL(rows []material) (string, error) {
	var b strings.Builder
	b.WriteString("-- Catálogo de materiales importado del ERP\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")
	if len(rows) == 0 {
		return b.String(), nil
	}

	records := make([]interface{}, 0, len(rows))
	for _, m := range rows {
		rec := goqu.Record{"search_key": postgres.SearchKey(m["material_code"], m["material_name"], m["description"])}
		for _, col := range columns {
			rec[col] = m[col]
		}
		records = append(records, rec)
	}

	update := goqu.Record{"updated_at": goqu.L("NOW()")}
	for _, col := range append(columns[1:], "search_key") {
		update[col] = goqu.L("EXCLUDED." + col)
	}

	sql, _, err := goqu.Dialect("postgres").
		Insert("material_master").
		Rows(records...).
		OnConflict(goqu.DoUpdate("material_code", update)).
		ToSQL()
	if err != nil {
		return "", err
	}
	b.WriteString(sql)
	b.WriteString(";\n")
	return b.String(), nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
