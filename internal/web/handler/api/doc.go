// Package api groups the JSON handlers mounted under /api.
//
// Reads are public. Mutations are registered behind auth.RequireAdmin and
// answer 401 with an empty body for anonymous or non admin callers. Bodies are
// decoded and validated through handler.Validator, so every validation
// failure looks like {"message": "...", "field": "..."}.
package api
