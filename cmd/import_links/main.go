// import_links carga proveedores y vínculos producto-proveedor desde un CSV exportado de una
// planilla y genera un script SQL idempotente: cada sentencia actualiza la fila existente o la inserta.
//
// Uso: go run ./cmd/import_links [-encoding windows-1252] [-delimiter ';'] [-region CL] [-out seed.sql] [-apply] archivo.csv
// Con -apply ejecuta las sentencias en una sola transacción contra la base configurada.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/reposicion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/reposicion-api/pkg/config"
)

// errUsage marca errores de invocación (argumentos, separador, codificación): salida con código 2.
var errUsage = errors.New("uso inválido")

type options struct {
	encoding  string
	delimiter string
	outPath   string
	region    string
	apply     bool
	args      []string
}

func main() {
	var opts options
	flag.StringVar(&opts.encoding, "encoding", "utf-8", "codificación del CSV: utf-8, windows-1252, iso-8859-1")
	flag.StringVar(&opts.delimiter, "delimiter", ",", "separador de columnas")
	flag.StringVar(&opts.outPath, "out", "", "archivo SQL de salida (por defecto stdout)")
	flag.StringVar(&opts.region, "region", "", "región para validar teléfonos (ej. CL); vacío no valida")
	flag.BoolVar(&opts.apply, "apply", false, "ejecutar el script contra la base de datos")
	flag.Parse()
	opts.args = flag.Args()

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Uso: import_links [flags] archivo.csv")
			flag.PrintDefaults()
			code = 2
		}
		os.Exit(code)
	}
}

// run ejecuta la importación. Los archivos abiertos se cierran antes de volver, también ante error.
func run(opts options, stdout, stderr io.Writer) error {
	if len(opts.args) != 1 {
		return fmt.Errorf("%w: se espera un archivo CSV", errUsage)
	}
	source := opts.args[0]
	delim, size := utf8.DecodeRuneInString(opts.delimiter)
	if size == 0 || size != len(opts.delimiter) {
		return fmt.Errorf("%w: separador %q", errUsage, opts.delimiter)
	}

	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	r, err := decodeReader(f, opts.encoding)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	set, err := parseCSV(r, delim)
	if err != nil {
		return fmt.Errorf("leer CSV: %w", err)
	}
	for _, s := range set.Skipped {
		fmt.Fprintf(stderr, "línea %d omitida: %s\n", s.Line, s.Reason)
	}
	for _, w := range phoneWarnings(set, opts.region) {
		fmt.Fprintf(stderr, "aviso: %s\n", w)
	}

	stmts := buildStatements(set, func() string { return uuid.New().String() })

	out := stdout
	if opts.outPath != "" {
		file, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("crear archivo: %w", err)
		}
		defer file.Close()
		out = file
	}
	if err := writeScript(out, source, stmts); err != nil {
		return fmt.Errorf("escribir SQL: %w", err)
	}

	if opts.apply {
		if err := applyScript(stmts, stderr); err != nil {
			return fmt.Errorf("aplicar script: %w", err)
		}
	}

	fmt.Fprintf(stderr, "%d proveedores, %d vínculos, %d filas omitidas\n",
		len(set.Suppliers), len(set.Links), len(set.Skipped))
	return nil
}

func writeScript(w io.Writer, source string, stmts []string) error {
	var b strings.Builder
	b.WriteString("-- Proveedores y vínculos producto-proveedor\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)
	for _, s := range stmts {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func applyScript(stmts []string, log io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := postgres.NewTxRunner(pool).ExecScript(ctx, stmts)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "aplicadas %d sentencias\n", applied)
	return nil
}
