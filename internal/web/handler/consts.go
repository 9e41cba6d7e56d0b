package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// IDPath is the path of a single resource.
	IDPath = "/:id"

	// APIPath prefixes the JSON api.
	APIPath = "/api"

	// ErrNilDepsMsg is used if router, cfg or db is nil.
	ErrNilDepsMsg = "router, cfg, db or validator is nil"
)
