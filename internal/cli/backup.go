package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vigilia/caseta/internal/backup"
	"github.com/vigilia/caseta/internal/filex"
)

// exportData writes the snapshot document to a file and, when an S3 bucket
// is configured, uploads a copy. Without an explicit path the snapshot lands
// in an exportaciones/ directory next to the binary's working directory.
func (a *App) exportData(ctx context.Context, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		dir, err := filex.EnsureSubDir("exportaciones")
		if err != nil {
			printlnFn("Error:", err.Error())
			return nil
		}
		path = filepath.Join(dir, fmt.Sprintf("caseta-%s.json", time.Now().Format("20060102-150405")))
	}

	data, err := backup.Export(ctx, a.store)
	if err != nil {
		a.logger.Error(ctx, "export failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Exportado a", path)

	if a.uploader != nil {
		key, err := a.uploader.Upload(ctx, data)
		if err != nil {
			a.logger.Error(ctx, "snapshot upload failed", "error", err)
			printlnFn("Aviso: no se pudo subir el respaldo:", err.Error())
			return nil
		}
		printlnFn("Respaldo subido:", key)
	}
	return nil
}

// importData replaces the whole store with a snapshot document. Destructive,
// so it asks for confirmation first.
func (a *App) importData(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Uso: importar <archivo>")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Esto reemplaza TODOS los datos actuales. Continuar? (s/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "s") {
		printlnFn("Importacion cancelada")
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}

	if err := backup.Import(ctx, a.store, data); err != nil {
		a.logger.Error(ctx, "import failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Importacion completada")
	return nil
}
