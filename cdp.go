package cdpdoc

import (
	"context"
	"time"
)

// CDP represents one Customer Data Platform whose documentation is crawled
// and indexed. The engine never branches on CDP identity; the ID is a plain
// data tag on documents and passages.
type CDP struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BaseURL   string    `json:"baseUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the CDP contains invalid fields.
func (c *CDP) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "cdp ID required")
	}
	if c.Name == "" {
		return Errorf(EINVALID, "cdp name required")
	}
	if c.BaseURL == "" {
		return Errorf(EINVALID, "cdp base URL required")
	}
	return nil
}

// CDPService represents a service for managing the CDP registry.
type CDPService interface {
	// CreateCDP registers a new CDP.
	// Returns ECONFLICT if the ID is already registered.
	CreateCDP(ctx context.Context, cdp *CDP) error

	// FindCDPByID retrieves a CDP by ID.
	// Returns ENOTFOUND if the CDP does not exist.
	FindCDPByID(ctx context.Context, id string) (*CDP, error)

	// FindCDPs retrieves all registered CDPs ordered by ID.
	FindCDPs(ctx context.Context) ([]*CDP, error)

	// DeleteCDP permanently removes a CDP and all associated documents.
	// Returns ENOTFOUND if the CDP does not exist.
	DeleteCDP(ctx context.Context, id string) error
}

// DefaultCDPs returns the four platforms the system ships support for.
// Callers may register others at runtime.
func DefaultCDPs() []*CDP {
	return []*CDP{
		{ID: "segment", Name: "Segment", BaseURL: "https://segment.com/docs/"},
		{ID: "mparticle", Name: "mParticle", BaseURL: "https://docs.mparticle.com/"},
		{ID: "lytics", Name: "Lytics", BaseURL: "https://docs.lytics.com/"},
		{ID: "zeotap", Name: "Zeotap", BaseURL: "https://docs.zeotap.com/"},
	}
}
