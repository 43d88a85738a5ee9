package model

// Notification is one tracked notification. ID is non-zero and unique among
// currently tracked entries; a replace overwrites the fields under the same ID.
type Notification struct {
	ID            uint32 `json:"id"`
	AppName       string `json:"app_name"`
	Summary       string `json:"summary"`
	Body          string `json:"body"`
	Icon          string `json:"icon"`
	ExpireTimeout int32  `json:"expire_timeout"` // -1 server default, 0 never expire, >0 ms; stored only
}

// NotifyRequest carries the arguments of one Notify call with the hints
// already decoded at the bus boundary.
type NotifyRequest struct {
	AppName       string
	ReplacesID    uint32
	AppIcon       string
	Summary       string
	Body          string
	Actions       []string
	Hints         Hints
	ExpireTimeout int32
}

// ServerInformation is the fixed tuple returned by GetServerInformation.
type ServerInformation struct {
	Name        string
	Vendor      string
	Version     string
	SpecVersion string
}
