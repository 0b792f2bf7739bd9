package platform

import "time"

// AppName is reported to notification centers that group by application.
const AppName = "Acrylic Reveal"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Expire overrides the display time. Zero uses DefaultExpire.
	Expire time.Duration
}

// DefaultExpire is how long notifications stay visible when Options.Expire is unset.
const DefaultExpire = 5 * time.Second

func (o Options) expireMillis() int32 {
	if o.Expire <= 0 {
		return int32(DefaultExpire / time.Millisecond)
	}
	return int32(o.Expire / time.Millisecond)
}
