// Package assets embeds the files shipped inside the binary:
// the page script and stylesheet, and the SQLite migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static/*.js static/*.css
var staticFS embed.FS

//go:embed sql/*.sql
var migrationsFS embed.FS

// Static returns the files served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrations returns the *.sql migration files, at the root of the FS.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}
