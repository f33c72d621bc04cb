// Servidor da API de slicing pie: contribuições, equity e relatórios.
package main

import (
	appfx "github.com/AhmedHodiani/slicing-pie/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
