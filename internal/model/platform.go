package model

import (
	"fmt"
	"strings"
)

// Platform identifies a social or contact service a URL belongs to
type Platform string

const (
	GitHub    Platform = "github"
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
	YouTube   Platform = "youtube"
	Email     Platform = "email"
	Phone     Platform = "phone"
)

// IsValid returns true if the platform is recognized
func (p Platform) IsValid() bool {
	switch p {
	case GitHub, Twitter, LinkedIn, Facebook, Instagram, YouTube, Email, Phone:
		return true
	default:
		return false
	}
}

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// AllPlatforms returns all supported platforms in canonical registration order.
func AllPlatforms() []Platform {
	return []Platform{GitHub, Twitter, LinkedIn, Facebook, Instagram, YouTube, Email, Phone}
}

// PlatformNames returns the identifiers of all supported platforms.
func PlatformNames() []string {
	all := AllPlatforms()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return names
}

// ParsePlatform parses a platform name. Matching ignores case and surrounding
// whitespace; "x" is accepted as an alias for twitter.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "x" {
		return Twitter, nil
	}
	p := Platform(name)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, s)
	}
	return p, nil
}

// EntityType is the kind of addressable thing a URL points to within a platform
type EntityType string

const (
	EntityProfile EntityType = "profile"
	EntityRepo    EntityType = "repo"
	EntityCompany EntityType = "company"
	EntityChannel EntityType = "channel"
	EntityEmail   EntityType = "email"
	EntityPhone   EntityType = "phone"
)

// String returns the entity type identifier.
func (e EntityType) String() string {
	return string(e)
}
