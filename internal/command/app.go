package command

import "fmt"

// Application identity. Constant for a given build.
const (
	AppName        = "Squri"
	AppVersion     = "0.1.0"
	AppDescription = "A unified codebase framework for desktop and mobile apps"
)

const greetingFormat = "Hello, %s! Welcome to " + AppName + "!"

// AppInfo describes the running application.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Greet returns the greeting for name. Any string is accepted verbatim.
func Greet(name string) string {
	return fmt.Sprintf(greetingFormat, name)
}

// GetAppInfo returns the application identity record.
func GetAppInfo() AppInfo {
	return AppInfo{
		Name:        AppName,
		Version:     AppVersion,
		Description: AppDescription,
	}
}
