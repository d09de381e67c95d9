// seed importa una exportación del localStorage del navegador (clave inventoryAppData)
// al almacenamiento configurado, descartando registros en formato antiguo.
//
// Uso: go run ./cmd/seed [-charset iso-8859-1] [-user <id>] [-token] export.json
//
// Con -user el snapshot se guarda en la sesión de ese usuario ("<STORAGE_KEY>:<user>").
// Con -token además imprime un JWT para ese usuario (si -user está vacío se genera un UUID).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-ledger/pkg/config"
	"github.com/jhoicas/Inventario-ledger/pkg/jwt"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

func main() {
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8 | iso-8859-1")
	userID := flag.String("user", "", "usuario dueño de la sesión")
	printToken := flag.Bool("token", false, "imprimir un JWT para el usuario")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed [-charset iso-8859-1] [-user id] [-token] export.json")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	payload, err := readExport(flag.Arg(0), *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer exportación: %v\n", err)
		os.Exit(1)
	}

	if *printToken && *userID == "" {
		*userID = uuid.NewString()
	}
	key := cfg.Storage.Key
	if *userID != "" {
		key = cfg.Storage.Key + ":" + *userID
	}

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	svc := inventory.NewService(store, nil, nil, log)
	l, err := svc.Import(ctx, key, payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}
	snap := l.Serialize()
	fmt.Printf("Importado en %q: %d categorías, %d envíos, %d pedidos\n",
		key, len(snap.Inventory), len(snap.Shipment), len(snap.Order))
	if l.Migrated() {
		fmt.Println("Registros en formato antiguo descartados; categorías conservadas.")
	}

	if *printToken {
		if !cfg.JWT.Enabled() {
			fmt.Fprintln(os.Stderr, "JWT_SECRET vacío: no se puede firmar el token")
			os.Exit(1)
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, *userID, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario: %s\nToken: %s\n", *userID, tok)
	}
}

// readExport lee el archivo y lo convierte a UTF-8 si viene en Latin-1.
func readExport(path, charset string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "":
	case "iso-8859-1", "iso8859-1", "latin1":
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
	return io.ReadAll(r)
}
