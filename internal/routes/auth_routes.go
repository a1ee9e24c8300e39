package routes

import (
	deliveryhttp "escala-backend/internal/delivery/http"
	"escala-backend/internal/repository"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := deliveryhttp.NewUserHandler(uc)

	app.Post("/api/auth/register", hdl.Register)
	app.Post("/api/auth/login", hdl.Login)
}
