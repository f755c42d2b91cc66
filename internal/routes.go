package internal

import (
	"localjournal/internal/controllers"
	"localjournal/internal/providers"
	"net/http"
)

func InitRoutes(journalController *controllers.JournalController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/", http.HandlerFunc(journalController.Index))
	routers.Post("/submit", http.HandlerFunc(journalController.Submit))
	routers.Get("/entries", http.HandlerFunc(journalController.Entries))
	return routers
}
