// seed puebla el registro de roles (1=admin, 2=tailor, 3=customer) y crea el
// usuario admin inicial si no existe. Idempotente: se puede correr en cada
// despliegue.
//
// Uso: go run ./cmd/seed
// Requiere las mismas variables de entorno que cmd/api, más:
//
//	SEED_ADMIN_EMAIL    (default admin@sastre.app)
//	SEED_ADMIN_PASSWORD (obligatoria para crear el admin)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/sastre-api/pkg/config"
	"github.com/tu-usuario/sastre-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now()
	roles := []struct {
		roleID int
		name   string
	}{
		{entity.RoleIDAdmin, entity.RoleAdmin},
		{entity.RoleIDTailor, entity.RoleTailor},
		{entity.RoleIDCustomer, entity.RoleCustomer},
	}
	for _, r := range roles {
		existing, err := roleRepo.GetByRoleID(r.roleID)
		if err != nil {
			fail("leer rol %d: %v", r.roleID, err)
		}
		if existing != nil {
			fmt.Printf("rol %d (%s) ya existe\n", r.roleID, r.name)
			continue
		}
		err = roleRepo.Create(&entity.Role{
			ID:        uuid.New().String(),
			RoleID:    r.roleID,
			Name:      r.name,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			fail("crear rol %d: %v", r.roleID, err)
		}
		fmt.Printf("rol %d (%s) creado\n", r.roleID, r.name)
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@sastre.app")
	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		fail("leer admin: %v", err)
	}
	if existing != nil {
		fmt.Printf("admin %s ya existe\n", adminEmail)
		return
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		fail("SEED_ADMIN_PASSWORD es obligatoria para crear el admin inicial")
	}
	hash, err := password.Hash(adminPassword)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}
	err = userRepo.Create(&entity.User{
		ID:        uuid.New().String(),
		Email:     adminEmail,
		Password:  hash,
		RoleIDNum: entity.RoleIDAdmin,
		OwnerName: "Administrador",
		Status:    entity.UserStatusApproved,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		fail("crear admin: %v", err)
	}
	fmt.Printf("admin %s creado\n", adminEmail)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
