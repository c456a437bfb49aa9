// Package data embeds the default trip documents (itinerary, tips, flights,
// accommodations). They are served directly when no database is configured
// and used to seed a fresh database otherwise.
package data

import "embed"

// FS holds <kind>.json for every domain.DocumentKind.
//
//go:embed *.json
var FS embed.FS
