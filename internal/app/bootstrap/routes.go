// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	contactfeature "github.com/issyx/issyxweb/internal/app/features/contact"
	healthfeature "github.com/issyx/issyxweb/internal/app/features/health"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup and Startup have
// completed. The router has three destinations:
//   - /api/contact: pre-flight, form submission, or a plain 405
//   - the health path, when one is configured
//   - everything else: the pre-built static site, untouched
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Static assets with pre-compressed file support (gzip/brotli)
	var static http.Handler = fileserver.Handler("/", appCfg.SiteDir)

	contactHandler := contactfeature.NewHandler(contactfeature.Config{
		APIKey:    appCfg.MailAPIKey,
		Recipient: appCfg.ContactEmail,
		From:      appCfg.MailFrom,
		SiteName:  appCfg.SiteName,
	}, deps.Mail, logger)

	var healthHandler *healthfeature.Handler
	if appCfg.HealthPath != "" {
		healthHandler = healthfeature.NewHandler(deps.Mail != nil, providerName(appCfg.MailProvider), logger)
	}

	return newRouter(contactHandler, healthHandler, appCfg.HealthPath, static), nil
}

// newRouter wires the three destinations. Dispatch is on the exact path,
// ahead of any method handling: every method on the contact path gets the
// contact router (and its own 405), and every method anywhere else goes to
// the static site. "/api/contact/" and anything below it are static paths.
func newRouter(contactHandler *contactfeature.Handler, healthHandler *healthfeature.Handler, healthPath string, static http.Handler) http.Handler {
	contact := contactfeature.Routes(contactHandler)

	var health chi.Router
	if healthHandler != nil && healthPath != "" {
		health = chi.NewRouter()
		health.Mount(healthPath, healthfeature.Routes(healthHandler))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch p := r.URL.Path; {
		case p == contactfeature.Path:
			contact.ServeHTTP(w, r)
		case health != nil && (p == healthPath || strings.HasPrefix(p, healthPath+"/")):
			health.ServeHTTP(w, r)
		default:
			static.ServeHTTP(w, r)
		}
	})
}
