package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/services"
	"github.com/tahsin/scholarfolio/internal/pkg/auth"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
)

// Pages renders the public site and the admin-only views. All data comes
// from the same services backing the API, so both surfaces always agree.
type Pages struct {
	renderer           *Renderer
	profileService     services.ProfileService
	achievementService services.AchievementService
	researchService    services.ResearchService
	projectService     services.ProjectService
	certificateService services.CertificateService
	jwtService         *auth.JWTService
}

// NewPages creates the page handler set.
func NewPages(
	renderer *Renderer,
	profileService services.ProfileService,
	achievementService services.AchievementService,
	researchService services.ResearchService,
	projectService services.ProjectService,
	certificateService services.CertificateService,
	jwtService *auth.JWTService,
) *Pages {
	return &Pages{
		renderer:           renderer,
		profileService:     profileService,
		achievementService: achievementService,
		researchService:    researchService,
		projectService:     projectService,
		certificateService: certificateService,
		jwtService:         jwtService,
	}
}

// RegisterRoutes mounts the page routes on the root of the router.
func (p *Pages) RegisterRoutes(router *gin.Engine) {
	router.GET("/", p.Home)
	router.GET("/achievements", p.Achievements)
	router.GET("/research", p.Research)
	router.GET("/projects", p.Projects)
	router.GET("/certificates", p.Certificates)
	router.GET("/login", p.Login)
	router.GET("/admin/messages", p.Messages)
}

// isAdmin reports whether the request carries a valid admin session cookie.
// Pages never fail on a bad token; they just render the visitor view.
func (p *Pages) isAdmin(ctx *gin.Context) bool {
	token, err := ctx.Cookie(auth.TokenCookieName)
	if err != nil || token == "" {
		return false
	}
	claims, err := p.jwtService.ValidateToken(token)
	if err != nil {
		return false
	}
	return claims.RoleType == string(models.RoleAdmin)
}

// base returns the data every page shares: the profile for the header and
// footer, plus the admin flag driving the edit controls.
func (p *Pages) base(ctx *gin.Context, title string) (gin.H, error) {
	profile, err := p.profileService.GetProfile(ctx.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{
		"Title":   title,
		"Profile": profile,
		"IsAdmin": p.isAdmin(ctx),
	}, nil
}

func (p *Pages) fail(ctx *gin.Context, err error) {
	logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Page data load failed")
	ctx.String(http.StatusInternalServerError, "something went wrong")
}

// Home renders the hero, about, news, courses and contact sections.
func (p *Pages) Home(ctx *gin.Context) {
	data, err := p.base(ctx, "Home")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	p.renderer.Render(ctx, "home.html", data)
}

// Achievements renders the full achievement list, newest first.
func (p *Pages) Achievements(ctx *gin.Context) {
	data, err := p.base(ctx, "Achievements")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	achievements, err := p.achievementService.List(ctx.Request.Context())
	if err != nil {
		p.fail(ctx, err)
		return
	}
	data["Achievements"] = achievements
	p.renderer.Render(ctx, "achievements.html", data)
}

// Research renders the publication list, newest first.
func (p *Pages) Research(ctx *gin.Context) {
	data, err := p.base(ctx, "Research")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	papers, err := p.researchService.List(ctx.Request.Context())
	if err != nil {
		p.fail(ctx, err)
		return
	}
	data["Papers"] = papers
	p.renderer.Render(ctx, "research.html", data)
}

// Projects renders a paginated project grid with category and featured
// filters taken from the query string.
func (p *Pages) Projects(ctx *gin.Context) {
	data, err := p.base(ctx, "Projects")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	page := pageParam(ctx)
	category := ctx.Query("category")
	featured := ctx.Query("featured") == "true"

	projects, pagination, err := p.projectService.List(ctx.Request.Context(), category, featured, page, 0)
	if err != nil {
		p.fail(ctx, err)
		return
	}
	data["Projects"] = projects
	data["Pagination"] = pagination
	data["Category"] = category
	data["Categories"] = models.ProjectCategories
	p.renderer.Render(ctx, "projects.html", data)
}

// Certificates renders a paginated certificate grid.
func (p *Pages) Certificates(ctx *gin.Context) {
	data, err := p.base(ctx, "Certificates")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	page := pageParam(ctx)
	category := ctx.Query("category")

	certificates, pagination, err := p.certificateService.List(ctx.Request.Context(), category, false, page, 0)
	if err != nil {
		p.fail(ctx, err)
		return
	}
	data["Certificates"] = certificates
	data["Pagination"] = pagination
	data["Category"] = category
	data["Categories"] = models.CertificateCategories
	p.renderer.Render(ctx, "certificates.html", data)
}

// Login renders the admin sign-in form. The form posts to the auth API,
// which sets the session cookie.
func (p *Pages) Login(ctx *gin.Context) {
	if p.isAdmin(ctx) {
		ctx.Redirect(http.StatusFound, "/admin/messages")
		return
	}
	p.renderer.Render(ctx, "login.html", gin.H{
		"Title":   "Sign in",
		"IsAdmin": false,
	})
}

// Messages renders the admin inbox. Visitors are sent to the login page.
func (p *Pages) Messages(ctx *gin.Context) {
	if !p.isAdmin(ctx) {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}
	data, err := p.base(ctx, "Messages")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	messages, err := p.profileService.ListMessages(ctx.Request.Context())
	if err != nil {
		p.fail(ctx, err)
		return
	}
	data["Messages"] = messages
	p.renderer.Render(ctx, "messages.html", data)
}

func pageParam(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
