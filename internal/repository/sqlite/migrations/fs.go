// Package migrations holds the embedded SQL schema migrations and the
// runner that applies them in filename order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
