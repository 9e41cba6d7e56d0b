// Package auth provides the admin gate for the JSON API.
//
// New attaches the caller read from the session cookie to fiber.Locals on
// every request. RequireAdmin is registered in front of mutating routes and
// answers 401 with an empty body when no admin is logged in. Public routes
// never look at the caller.
//
// Usage:
//
//	app.Use(auth.New(store))
//	router.Post("/", auth.RequireAdmin, h.Create)
package auth
