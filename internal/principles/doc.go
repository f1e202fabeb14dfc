// Package principles collects the small vignettes used to introduce the
// single responsibility, open/closed and interface segregation principles.
//
// Dependency inversion is shown by the notification service, whose
// NotificationService depends only on the Notification interface.
package principles
