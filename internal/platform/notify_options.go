// Package platform delivers desktop notifications through the host's
// notification service.
package platform

// AppName identifies the editor to the notification service.
const AppName = "Pixel Editor"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image shown alongside the
	// notification where the platform supports it.
	IconPath string
}
