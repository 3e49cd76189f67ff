// Seed crea las cuentas iniciales de la aplicación: un admin y, con -owner,
// un dueño con una tienda de demostración. Pensado para correr una sola vez
// contra una base vacía; si el email ya existe, lo reporta y sigue.
//
// Uso:
//
//	go run ./cmd/seed -email admin@rating.app -password 'Admin#2024' -name 'Administrador General'
//	go run ./cmd/seed -owner -email dueno@rating.app -password 'Owner#2024' -name 'Dueño Demo' -store 'Tienda Demo'
package main

import (
	"context"
	"flag"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/infrastructure/postgres"
	"github.com/Pranshau/Rating-App/pkg/config"
	"github.com/Pranshau/Rating-App/pkg/logger"
)

func main() {
	var (
		owner     = flag.Bool("owner", false, "crear un dueño con tienda demo en lugar de un admin")
		email     = flag.String("email", "", "email de la cuenta")
		password  = flag.String("password", "", "contraseña (8-16, mayúscula y carácter especial)")
		name      = flag.String("name", "", "nombre (4-60 caracteres)")
		storeName = flag.String("store", "Tienda Demo", "nombre de la tienda (solo con -owner)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	if *email == "" || *password == "" || *name == "" {
		log.Fatal().Msg("se requieren -email, -password y -name")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.BcryptCost)
	storeUC := usecase.NewStoreUseCase(storeRepo, userRepo, txRunner, cfg.Auth.BcryptCost)

	if *owner {
		out, err := storeUC.Create(dto.CreateStoreRequest{
			Name:          *storeName,
			Address:       "Dirección demo 123",
			OwnerName:     *name,
			OwnerEmail:    *email,
			OwnerPassword: *password,
		})
		if err != nil {
			if err == domain.ErrEmailAlreadyExists {
				log.Warn().Str("email", *email).Msg("el dueño ya existe, no se crea nada")
				return
			}
			log.Fatal().Err(err).Msg("crear dueño + tienda")
		}
		log.Info().
			Str("owner_id", out.OwnerID).
			Str("store_id", out.Store.ID).
			Msg("dueño y tienda demo creados")
		return
	}

	user, err := userUC.Create(dto.CreateUserRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			log.Warn().Str("email", *email).Msg("el admin ya existe, no se crea nada")
			return
		}
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("admin creado")
}
