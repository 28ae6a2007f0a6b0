package admin

import "embed"

//go:embed static
var staticAssets embed.FS
