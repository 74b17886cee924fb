// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Path is the contact endpoint. Only this exact path is handled here.
const Path = "/api/contact"

// Routes returns a router for Path. Mount it with Handle (not Mount) so
// that "/api/contact/" and deeper paths fall through to the static site.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Options(Path, ServePreflight)
	r.Post(Path, h.ServeSubmit)
	r.MethodNotAllowed(MethodNotAllowed)
	return r
}
