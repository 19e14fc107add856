// Package shoppinglist embeds the goose migrations for the shopping_lists table.
package shoppinglist

import "embed"

//go:embed *.sql
var FS embed.FS
