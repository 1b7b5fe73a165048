// Package migrations embeds the goose schema migrations for the HelpNet
// database, one directory per supported dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
