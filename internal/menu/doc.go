// Package menu describes the application menu as a static tree and maps the
// activation of its items to a single side effect each. The tree is built
// once at startup; the Dispatcher reaches the running application only
// through a Handle passed to it at construction.
package menu
