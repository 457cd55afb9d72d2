// Package migrations embeds the SQL schema so it ships inside the binary
// and is applied on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
