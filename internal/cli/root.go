package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.current.Usuario, a.current.Rol)
}

// Root runs the command loop. A session starts signed out; every command
// except help and exit requires a signed-in guard, and account management
// plus import require the administrator role.
func (a *App) Root(ctx context.Context) {
	printlnFn("Caseta de vigilancia (escriba 'ayuda' para ver los comandos)")
	scanner := bufio.NewScanner(os.Stdin)

	_ = a.Login(ctx)

	for {
		fmt.Printf("caseta %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "salir" || cmd == "exit" || cmd == "quit" {
			printlnFn("Hasta luego")
			return
		}
		if cmd == "ayuda" || cmd == "help" {
			a.printHelp()
			continue
		}
		if cmd == "entrar" || cmd == "login" {
			_ = a.Login(ctx)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Inicie sesion primero (comando: entrar)")
			continue
		}

		switch cmd {
		case "vehiculo":
			_ = a.registerVehicle(ctx)
		case "peaton":
			_ = a.registerPedestrian(ctx)
		case "historial-vehiculos":
			_ = a.vehicleHistory(ctx)
		case "historial-peatones":
			_ = a.pedestrianHistory(ctx)
		case "bitacora":
			_ = a.addLogNote(ctx)
		case "bitacora-lista":
			_ = a.listLogNotes(ctx)
		case "bitacora-borrar":
			_ = a.deleteLogNote(ctx, args)
		case "directorio":
			_ = a.upsertDirectory(ctx)
		case "directorio-lista":
			_ = a.listDirectory(ctx)
		case "directorio-buscar":
			_ = a.lookupDirectory(ctx, args)
		case "directorio-borrar":
			_ = a.deleteDirectory(ctx, args)
		case "exportar":
			_ = a.exportData(ctx, args)
		case "importar":
			if !a.isAdmin() {
				printlnFn("Solo administradores")
				continue
			}
			_ = a.importData(ctx, args)
		case "guardia", "guardia-lista", "guardia-borrar":
			if !a.isAdmin() {
				printlnFn("Solo administradores")
				continue
			}
			switch cmd {
			case "guardia":
				_ = a.addGuard(ctx)
			case "guardia-lista":
				_ = a.listGuards(ctx)
			case "guardia-borrar":
				_ = a.deleteGuard(ctx, args)
			}
		case "cerrar", "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Comando desconocido:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		printlnFn("Comandos: entrar, salir")
		return
	}
	printlnFn("Comandos: vehiculo, peaton, historial-vehiculos, historial-peatones,")
	printlnFn("          bitacora, bitacora-lista, bitacora-borrar,")
	printlnFn("          directorio, directorio-lista, directorio-buscar, directorio-borrar,")
	printlnFn("          exportar, cerrar, salir")
	if a.isAdmin() {
		printlnFn("Admin:    guardia, guardia-lista, guardia-borrar, importar")
	}
}
