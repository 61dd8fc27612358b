package routes

import (
	"jewelry-shop/controllers"
	"jewelry-shop/models"
	"jewelry-shop/repositories"
	"jewelry-shop/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NewControllers wires repositories, services and controllers around the
// injected pool. main and the serverless entry share this.
func NewControllers(pool *pgxpool.Pool, log *zap.Logger) Controllers {
	emailSvc, err := models.NewEmailService()
	if err != nil {
		log.Warn("email disabled", zap.Error(err))
		emailSvc = nil
	}

	userRepo := repositories.NewUserRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	collectionRepo := repositories.NewCollectionRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	ticketRepo := repositories.NewTicketRepository(pool)
	settingsRepo := repositories.NewSettingsRepository(pool)
	dashboardRepo := repositories.NewDashboardRepository(pool)

	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo)
	collectionSvc := services.NewCollectionService(collectionRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, log)
	ticketSvc := services.NewTicketService(ticketRepo, emailSvc, log)
	settingsSvc := services.NewSettingsService(settingsRepo)
	dashboardSvc := services.NewDashboardService(dashboardRepo, orderRepo, settingsSvc)

	return Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		User:       controllers.NewUserController(userSvc),
		Product:    controllers.NewProductController(productSvc, log),
		Collection: controllers.NewCollectionController(collectionSvc),
		Order:      controllers.NewOrderController(orderSvc, emailSvc, log),
		Ticket:     controllers.NewTicketController(ticketSvc),
		Settings:   controllers.NewSettingsController(settingsSvc),
		Dashboard:  controllers.NewDashboardController(dashboardSvc),
	}
}
