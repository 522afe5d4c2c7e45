package main

import (
	"fmt"
	"net/http"

	"github.com/opsdesk/workforce-backend-go/internal/config"
	appHTTP "github.com/opsdesk/workforce-backend-go/internal/handler/http"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/database"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/token"
	"github.com/opsdesk/workforce-backend-go/internal/repository/postgresql"
	leaveService "github.com/opsdesk/workforce-backend-go/internal/service/leave"
	meetingService "github.com/opsdesk/workforce-backend-go/internal/service/meeting"
	"github.com/opsdesk/workforce-backend-go/internal/service/visibility"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	identityRepo := postgresql.NewIdentityRepository(db)
	meetingRepo := postgresql.NewMeetingRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	tokenService := token.NewService(cfg.Token.Secret, cfg.Token.Expiration)
	resolver := visibility.NewResolver(identityRepo)
	meetingSvc := meetingService.NewService(meetingRepo, resolver)
	leaveSvc := leaveService.NewService(leaveRequestRepo, resolver)

	meetingHandler := appHTTP.NewMeetingHandler(meetingSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	teamHandler := appHTTP.NewTeamHandler(identityRepo)

	router := appHTTP.NewRouter(
		tokenService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		meetingHandler,
		leaveHandler,
		teamHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
