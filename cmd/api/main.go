// Command api servidor HTTP del ILMS y tareas de mantenimiento (copia al espejo).
//
// Uso:
//
//	api            equivale a "api serve"
//	api serve      levanta la API HTTP
//	api sync       copia el catálogo a MIRROR_DATABASE_URL una vez y termina
package main

import (
	"fmt"
	"os"

	_ "github.com/jhoicas/ilms-api/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
