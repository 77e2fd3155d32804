package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/moduleprospec/api-prospection/internal/affectation"
	"github.com/moduleprospec/api-prospection/internal/auth"
	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/equipe"
	"github.com/moduleprospec/api-prospection/internal/historique"
	"github.com/moduleprospec/api-prospection/internal/immeuble"
	"github.com/moduleprospec/api-prospection/internal/logger"
	"github.com/moduleprospec/api-prospection/internal/manager"
	"github.com/moduleprospec/api-prospection/internal/notification"
	"github.com/moduleprospec/api-prospection/internal/porte"
	"github.com/moduleprospec/api-prospection/internal/prospection"
	"github.com/moduleprospec/api-prospection/internal/statistiques"
	"github.com/moduleprospec/api-prospection/internal/suivi"
	"github.com/moduleprospec/api-prospection/internal/utils/db"
	"github.com/moduleprospec/api-prospection/internal/zone"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	zapLogger, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()

	database, err := db.GetDB()
	if err != nil {
		zapLogger.Fatal("erreur de connexion à la base", zap.Error(err))
	}

	if err := database.AutoMigrate(
		&manager.Manager{},
		&equipe.Equipe{},
		&commercial.Commercial{},
		&zone.Zone{},
		&immeuble.Immeuble{},
		&porte.Porte{},
		&prospection.ProspectionRequest{},
		&historique.HistoriqueProspection{},
	); err != nil {
		zapLogger.Fatal("erreur lors de l'AutoMigrate", zap.Error(err))
	}

	notifier := notification.NewWebhook(os.Getenv("NOTIFICATION_WEBHOOK_URL"), zapLogger)
	registre := suivi.NewRegistre()
	hub := suivi.NewHub(registre, zapLogger)

	// Handlers
	managerHandler := manager.NewHandler(database)
	equipeHandler := equipe.NewHandler(database)
	commercialHandler := commercial.NewHandler(database)
	zoneHandler := zone.NewHandler(database)
	immeubleHandler := immeuble.NewHandler(database)
	porteHandler := porte.NewHandler(database, zapLogger)
	prospectionHandler := prospection.NewHandler(database, notifier, zapLogger)
	statistiquesHandler := statistiques.NewHandler(database)
	affectationHandler := affectation.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Routes publiques
	r.HandleFunc("/managers/login", managerHandler.Login).Methods("POST")
	r.HandleFunc("/commerciaux/login", commercialHandler.Login).Methods("POST")
	r.HandleFunc("/ws/suivi", hub.ServirWS)

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAuthentification)

	// Routes des managers
	api.HandleFunc("/managers", managerHandler.CreerManager).Methods("POST")
	api.HandleFunc("/managers", managerHandler.ListerManagers).Methods("GET")
	api.HandleFunc("/managers/{id}", managerHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/managers/{id}", managerHandler.MettreAJourManager).Methods("PUT")
	api.HandleFunc("/managers/{id}", managerHandler.SupprimerManager).Methods("DELETE")

	// Routes des équipes
	api.HandleFunc("/equipes", equipeHandler.CreerEquipe).Methods("POST")
	api.HandleFunc("/equipes", equipeHandler.ListerEquipes).Methods("GET")
	api.HandleFunc("/equipes/{id}/statistiques", statistiquesHandler.StatsEquipe).Methods("GET")
	api.HandleFunc("/equipes/{id}", equipeHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/equipes/{id}", equipeHandler.MettreAJourEquipe).Methods("PUT")
	api.HandleFunc("/equipes/{id}", equipeHandler.SupprimerEquipe).Methods("DELETE")

	// Routes des commerciaux
	api.HandleFunc("/commerciaux", commercialHandler.CreerCommercial).Methods("POST")
	api.HandleFunc("/commerciaux", commercialHandler.ListerCommerciaux).Methods("GET")
	api.HandleFunc("/commerciaux/me", commercialHandler.Me).Methods("GET")
	api.HandleFunc("/commerciaux/{id}/resume", commercialHandler.ObtenirResume).Methods("GET")
	api.HandleFunc("/commerciaux/{id}", commercialHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/commerciaux/{id}", commercialHandler.MettreAJourCommercial).Methods("PUT")
	api.HandleFunc("/commerciaux/{id}", commercialHandler.SupprimerCommercial).Methods("DELETE")

	// Routes des zones
	api.HandleFunc("/zones", zoneHandler.CreerZone).Methods("POST")
	api.HandleFunc("/zones", zoneHandler.ListerZones).Methods("GET")
	api.HandleFunc("/zones/{id}/statistiques", statistiquesHandler.StatsZone).Methods("GET")
	api.HandleFunc("/zones/{id}", zoneHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/zones/{id}", zoneHandler.MettreAJourZone).Methods("PUT")
	api.HandleFunc("/zones/{id}", zoneHandler.SupprimerZone).Methods("DELETE")

	// Routes des immeubles
	api.HandleFunc("/immeubles", immeubleHandler.CreerImmeuble).Methods("POST")
	api.HandleFunc("/immeubles", immeubleHandler.ListerImmeubles).Methods("GET")
	api.HandleFunc("/immeubles/{id}/portes", porteHandler.ListerParImmeuble).Methods("GET")
	api.HandleFunc("/immeubles/{id}", immeubleHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/immeubles/{id}", immeubleHandler.MettreAJourImmeuble).Methods("PUT")
	api.HandleFunc("/immeubles/{id}", immeubleHandler.SupprimerImmeuble).Methods("DELETE")

	// Routes des portes
	api.HandleFunc("/portes", porteHandler.CreerPorte).Methods("POST")
	api.HandleFunc("/portes", porteHandler.ListerPortes).Methods("GET")
	api.HandleFunc("/portes/{id}", porteHandler.TrouverParID).Methods("GET")
	api.HandleFunc("/portes/{id}", porteHandler.MettreAJour).Methods("PATCH")
	api.HandleFunc("/portes/{id}", porteHandler.SupprimerPorte).Methods("DELETE")

	// Routes de prospection
	api.HandleFunc("/prospection/start", prospectionHandler.Demarrer).Methods("POST")
	api.HandleFunc("/prospection/handle-request", prospectionHandler.TraiterDemande).Methods("POST")
	api.HandleFunc("/prospection/requests/pending/{commercialId}", prospectionHandler.DemandesEnAttente).Methods("GET")
	api.HandleFunc("/prospection/requests/status/{requestId}", prospectionHandler.StatutDemande).Methods("GET")
	api.HandleFunc("/prospection/requests", prospectionHandler.ListerDemandes).Methods("GET")

	// Routes de statistiques
	api.HandleFunc("/statistiques", statistiquesHandler.StatsGlobales).Methods("GET")
	api.HandleFunc("/statistiques/commercial/{id}", statistiquesHandler.StatsCommercial).Methods("GET")

	// Routes d'affectation
	api.HandleFunc("/affectations/zones", affectationHandler.AssignerZone).Methods("POST")
	api.HandleFunc("/affectations/objectif-mensuel", affectationHandler.DefinirObjectifMensuel).Methods("POST")
	api.HandleFunc("/affectations/zones/manager/{id}", affectationHandler.ZonesPourManager).Methods("GET")
	api.HandleFunc("/affectations/zones/commercial/{id}", affectationHandler.ZonesPourCommercial).Methods("GET")
	api.HandleFunc("/affectations/zones/{id}/commerciaux", affectationHandler.CommerciauxDansZone).Methods("GET")

	// CORS
	origines := []string{"*"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origines = strings.Split(env, ",")
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origines,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("serveur démarré", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		zapLogger.Fatal("arrêt du serveur", zap.Error(err))
	}
}
