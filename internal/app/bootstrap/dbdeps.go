// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/issyx/issyxweb/internal/app/system/mailer"
)

// DBDeps holds back-end dependencies for the app. There is no database;
// the only backend is the outbound email provider. Mail is nil when no
// API key is configured.
type DBDeps struct {
	Mail mailer.Sender
}
