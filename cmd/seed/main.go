// seed genera el script SQL que puebla el catálogo (products y stock) a partir de un
// archivo JSON con el formato del servidor de la tienda: {"products": [...], "stock": [...]}.
//
// Uso: go run ./cmd/seed [--latin1] [--out ruta.sql] [catalog.json]
// Por defecto lee catalog.json del directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogFile struct {
	Products []productRow `json:"products"`
	Stock    []stockRow   `json:"stock"`
}

type productRow struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type stockRow struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

func main() {
	latin1 := pflag.Bool("latin1", false, "el archivo de entrada está en ISO-8859-1")
	outFlag := pflag.String("out", "", "ruta del script SQL (por defecto migrations/002_seed_catalog.sql)")
	pflag.Parse()

	jsonPath := "catalog.json"
	if pflag.NArg() > 0 {
		jsonPath = pflag.Arg(0)
	}
	f, err := os.Open(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir JSON: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	c, err := decodeCatalog(f, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, c); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d registros de stock\n", outPath, len(c.Products), len(c.Stock))
}

// decodeCatalog lee el JSON, valida IDs y deja productos y stock ordenados por ID.
func decodeCatalog(r io.Reader, latin1 bool) (catalogFile, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	var c catalogFile
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return c, err
	}

	known := make(map[int]bool, len(c.Products))
	for _, p := range c.Products {
		if p.ID <= 0 {
			return c, fmt.Errorf("producto con id inválido %d", p.ID)
		}
		if known[p.ID] {
			return c, fmt.Errorf("producto %d duplicado", p.ID)
		}
		known[p.ID] = true
	}
	for _, s := range c.Stock {
		if !known[s.ID] {
			return c, fmt.Errorf("stock %d sin producto", s.ID)
		}
		if s.Amount < 0 {
			return c, fmt.Errorf("stock %d negativo", s.ID)
		}
	}

	sort.Slice(c.Products, func(i, j int) bool { return c.Products[i].ID < c.Products[j].ID })
	sort.Slice(c.Stock, func(i, j int) bool { return c.Stock[i].ID < c.Stock[j].ID })
	return c, nil
}

// writeSQL escribe upserts idempotentes: productos primero (stock referencia products).
func writeSQL(w io.Writer, c catalogFile) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de la tienda (productos y stock)\n")
	b.WriteString("-- Generado por cmd/seed\n\n")

	if len(c.Products) > 0 {
		b.WriteString("-- 1. Productos\n")
		b.WriteString("INSERT INTO products (id, title, price, image) VALUES\n")
		for i, p := range c.Products {
			fmt.Fprintf(&b, "  (%d, '%s', %s, '%s')", p.ID, escapeSQL(p.Title), p.Price.String(), escapeSQL(p.Image))
			b.WriteString(rowEnd(i, len(c.Products)))
		}
		b.WriteString("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, price = EXCLUDED.price, image = EXCLUDED.image;\n\n")
	}

	if len(c.Stock) > 0 {
		b.WriteString("-- 2. Stock\n")
		b.WriteString("INSERT INTO stock (id, amount) VALUES\n")
		for i, s := range c.Stock {
			fmt.Fprintf(&b, "  (%d, %d)", s.ID, s.Amount)
			b.WriteString(rowEnd(i, len(c.Stock)))
		}
		b.WriteString("ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func rowEnd(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return "\n"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
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
