package routes

import (
	"net/http"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"
	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/utils/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// RequestTimeout bounds every non-websocket request.
const RequestTimeout = 60 * time.Second

// NewRouter wires every controller over clients and mounts them.
func NewRouter(cfg config.Config, db *gorm.DB, clients *controllers.Clients) http.Handler {
	authCtrl := controllers.NewAuthController(clients, cfg)
	quizCtrl := controllers.NewQuestionnaireController(clients)
	chatCtrl := controllers.NewChatController(clients)
	profileCtrl := controllers.NewProfileController(clients)
	healthCtrl := controllers.NewHealthController(db)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Timeout(RequestTimeout))

	// unknown paths point the client at the page they resolve to, Home by default
	r.NotFound(handleJSON(func(r *http.Request) (any, int, error) {
		return types.NextResponse{Next: string(nav.Resolve(r.URL.Path))}, http.StatusNotFound, nil
	}))

	r.Mount("/auth", AuthRoutes(authCtrl, cfg))
	r.Mount("/questionnaire", QuestionnaireRoutes(quizCtrl, cfg))
	r.Mount("/chat", ChatRoutes(chatCtrl, cfg))
	r.Mount("/profile", ProfileRoutes(profileCtrl, cfg))
	r.Mount("/home", HomeRoutes(profileCtrl, cfg))
	r.Mount("/health", HealthRoutes(healthCtrl))
	return r
}
