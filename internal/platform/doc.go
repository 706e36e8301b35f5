// Package platform hands files to the desktop: opening them with their
// default application and revealing them in the system file manager.
package platform
