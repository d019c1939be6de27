// token emite un JWT para un cliente de la API (POS, ERP o administrador).
//
// Uso: go run ./cmd/token -client pos-riyadh-01 -role integration [-exp 1440]
// Lee JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la misma configuración que la API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/facturador-zatca/pkg/config"
	"github.com/jhoicas/facturador-zatca/pkg/jwt"
)

func main() {
	client := flag.String("client", "", "identificador del cliente (obligatorio)")
	role := flag.String("role", jwt.RoleCashier, "admin | integration | cashier")
	exp := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	if *client == "" {
		fmt.Fprintln(os.Stderr, "-client es obligatorio")
		flag.Usage()
		os.Exit(2)
	}
	switch *role {
	case jwt.RoleAdmin, jwt.RoleIntegration, jwt.RoleCashier:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *client, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
