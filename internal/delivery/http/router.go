package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"multaqa/internal/delivery/http/controllers"
	"multaqa/internal/delivery/http/middleware"
	"multaqa/internal/domain"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Event       *controllers.EventController
	Submission  *controllers.SubmissionController
	Program     *controllers.ProgramController
	Sector      *controllers.SectorController
	Opportunity *controllers.OpportunityController
	Content     *controllers.ContentController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes under /admin require a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Public site
	mux.HandleFunc("GET /events/{slug}", c.Event.GetPublicEvent)
	mux.HandleFunc("GET /events/{eventID}/sections/{section}/form", c.Event.ResolveSectionForm)
	mux.HandleFunc("GET /events/{eventID}/program", c.Program.GetProgram)
	mux.HandleFunc("GET /sectors", c.Sector.ListSectors)
	mux.HandleFunc("GET /sectors/{sectorID}", c.Sector.GetSector)
	mux.HandleFunc("GET /opportunities", c.Opportunity.ListOpportunities)
	mux.HandleFunc("GET /opportunities/{opportunityID}", c.Opportunity.GetOpportunity)
	mux.HandleFunc("GET /posts", c.Content.ListPosts)
	mux.HandleFunc("GET /posts/{slug}", c.Content.GetPost)
	mux.HandleFunc("GET /links", c.Content.ListLinks)
	mux.HandleFunc("POST /submissions", c.Submission.Submit)

	// Admin: events and sections
	mux.HandleFunc("POST /admin/events", auth(c.Event.CreateEvent))
	mux.HandleFunc("GET /admin/events", auth(c.Event.ListEvents))
	mux.HandleFunc("GET /admin/events/{eventID}", auth(c.Event.GetEvent))
	mux.HandleFunc("PATCH /admin/events/{eventID}", auth(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /admin/events/{eventID}", auth(c.Event.DeleteEvent))
	mux.HandleFunc("GET /admin/events/{eventID}/sections", auth(c.Event.ListSections))
	mux.HandleFunc("GET /admin/events/{eventID}/sections/{section}", auth(c.Event.GetSection))
	mux.HandleFunc("PUT /admin/events/{eventID}/sections/{section}", auth(c.Event.SaveSection))

	// Admin: section form templates
	mux.HandleFunc("GET /admin/section-templates", auth(c.Event.ListTemplates))
	mux.HandleFunc("GET /admin/section-templates/{section}", auth(c.Event.GetTemplate))
	mux.HandleFunc("PUT /admin/section-templates/{section}", auth(c.Event.SaveTemplate))

	// Admin: program sessions
	mux.HandleFunc("POST /admin/events/{eventID}/sessions", auth(c.Program.CreateSession))
	mux.HandleFunc("PUT /admin/events/{eventID}/sessions/{sessionID}", auth(c.Program.UpdateSession))
	mux.HandleFunc("DELETE /admin/events/{eventID}/sessions/{sessionID}", auth(c.Program.DeleteSession))

	// Admin: submissions and triage
	mux.HandleFunc("GET /admin/submissions/{submissionID}", auth(c.Submission.GetSubmission))
	mux.HandleFunc("PATCH /admin/submissions/{submissionID}/status", auth(c.Submission.UpdateStatus))
	mux.HandleFunc("GET /admin/submissions/{submissionID}/contacts", auth(c.Submission.Contacts))
	mux.HandleFunc("GET /admin/triage/{kind}", auth(c.Submission.Triage))
	mux.HandleFunc("GET /admin/triage/{kind}/export", auth(c.Submission.ExportCSV))

	// Admin: sectors and opportunities
	mux.HandleFunc("POST /admin/sectors", auth(c.Sector.CreateSector))
	mux.HandleFunc("PUT /admin/sectors/{sectorID}", auth(c.Sector.UpdateSector))
	mux.HandleFunc("DELETE /admin/sectors/{sectorID}", auth(c.Sector.DeleteSector))
	mux.HandleFunc("POST /admin/opportunities", auth(c.Opportunity.CreateOpportunity))
	mux.HandleFunc("PUT /admin/opportunities/{opportunityID}", auth(c.Opportunity.UpdateOpportunity))
	mux.HandleFunc("DELETE /admin/opportunities/{opportunityID}", auth(c.Opportunity.DeleteOpportunity))

	// Admin: blog and link directory
	mux.HandleFunc("GET /admin/posts", auth(c.Content.ListAllPosts))
	mux.HandleFunc("POST /admin/posts", auth(c.Content.CreatePost))
	mux.HandleFunc("PUT /admin/posts/{postID}", auth(c.Content.UpdatePost))
	mux.HandleFunc("DELETE /admin/posts/{postID}", auth(c.Content.DeletePost))
	mux.HandleFunc("POST /admin/links", auth(c.Content.CreateLink))
	mux.HandleFunc("PUT /admin/links/{linkID}", auth(c.Content.UpdateLink))
	mux.HandleFunc("DELETE /admin/links/{linkID}", auth(c.Content.DeleteLink))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
