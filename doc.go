// Package main is the entry point of gamelanding, a landing page server for
// game showcases. It serves the public page with its game gallery and call to
// action buttons, and a JSON API through which an admin edits the content.
// Data is kept with gorm in sqlite, postgres or mysql.
package main
