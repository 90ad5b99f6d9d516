package appsv0

// Empty is the request or response of operations that carry no payload.
type Empty struct{}

// HealthCheckRequest asks a capability service for liveness.
type HealthCheckRequest struct{}

// HealthCheckResponse reports liveness plus the process identity.
type HealthCheckResponse struct {
	Healthy bool   `cbor:"healthy,omitempty"`
	Name    string `cbor:"name,omitempty"`
	Version string `cbor:"version,omitempty"`
}

func (x *HealthCheckResponse) GetHealthy() bool {
	if x != nil {
		return x.Healthy
	}
	return false
}

func (x *HealthCheckResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *HealthCheckResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

// SettingsMap carries a configuration push from the host.
type SettingsMap struct {
	Values map[string]string `cbor:"values,omitempty"`
}

func (x *SettingsMap) GetValues() map[string]string {
	if x != nil {
		return x.Values
	}
	return nil
}
