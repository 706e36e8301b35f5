// Package command holds the request/response surface the frontend calls:
// the built-in commands (greet, get_app_info) and the Registry every command,
// built-in or plugin-provided, is invoked through.
package command
