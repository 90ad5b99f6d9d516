// Package bridge holds the pieces every capability bridge shares: the health
// check answered from the process environment, the configure push, and the
// conversion of handler errors into in-band error text.
package bridge

import (
	"context"
	"time"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/appenv"
)

// ConfigureFunc receives settings pushed by the host.
type ConfigureFunc func(settings map[string]string)

// Base is embedded by every capability bridge.
type Base struct {
	Env         appenv.Env
	OnConfigure ConfigureFunc
}

// HealthCheck reports liveness with the process name and version. It never
// consults the handler.
func (b Base) HealthCheck(context.Context, *appsv0.HealthCheckRequest) (*appsv0.HealthCheckResponse, error) {
	return &appsv0.HealthCheckResponse{
		Healthy: true,
		Name:    b.Env.Name,
		Version: b.Env.Version,
	}, nil
}

// Configure delivers the settings map to OnConfigure. Without a callback it
// is a no-op; it never fails.
func (b Base) Configure(_ context.Context, in *appsv0.SettingsMap) (*appsv0.Empty, error) {
	if b.OnConfigure != nil {
		values := in.GetValues()
		if values == nil {
			values = map[string]string{}
		}
		b.OnConfigure(values)
	}
	return &appsv0.Empty{}, nil
}

// ErrorText returns err's message, or "" for a nil error.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// UnixMilli converts t to wire milliseconds. The zero time maps to 0.
func UnixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromUnixMilli converts wire milliseconds to a UTC time. 0 maps to the zero
// time.
func FromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
