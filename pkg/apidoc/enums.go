package apidoc

import (
	"github.com/cockroachdb/errors"
)

// The enumerations below are open: the server may add values this client
// does not know about. Any value outside the known set is kept verbatim and
// reported as unrecognized instead of failing to decode.

// Visibility controls who is able to view an application or version.
type Visibility string

const (
	// VisibilityUser means only the creator can view it.
	VisibilityUser Visibility = "user"
	// VisibilityOrganization means any member of the organization can view it.
	VisibilityOrganization Visibility = "organization"
	// VisibilityPublic means anybody can view it, including anonymous users.
	VisibilityPublic Visibility = "public"
)

// Visibilities lists the known visibilities.
var Visibilities = []Visibility{VisibilityUser, VisibilityOrganization, VisibilityPublic}

func (v Visibility) String() string { return string(v) }

// Unrecognized reports whether v is not one of the known visibilities.
func (v Visibility) Unrecognized() bool {
	switch v {
	case VisibilityUser, VisibilityOrganization, VisibilityPublic:
		return false
	}
	return true
}

// Validate returns an error if v is unrecognized.
func (v Visibility) Validate() error {
	if v.Unrecognized() {
		return errors.Newf("invalid visibility: %s", string(v))
	}
	return nil
}

// OriginalType is the format of a specification document.
type OriginalType string

const (
	OriginalTypeAPIJSON     OriginalType = "api_json"
	OriginalTypeSwaggerJSON OriginalType = "swagger_json"
	OriginalTypeAvroIDL     OriginalType = "avro_idl"
)

// OriginalTypes lists the known original types.
var OriginalTypes = []OriginalType{OriginalTypeAPIJSON, OriginalTypeSwaggerJSON, OriginalTypeAvroIDL}

func (t OriginalType) String() string { return string(t) }

// Unrecognized reports whether t is not one of the known original types.
func (t OriginalType) Unrecognized() bool {
	switch t {
	case OriginalTypeAPIJSON, OriginalTypeSwaggerJSON, OriginalTypeAvroIDL:
		return false
	}
	return true
}

// Validate returns an error if t is unrecognized.
func (t OriginalType) Validate() error {
	if t.Unrecognized() {
		return errors.Newf("invalid original type: %s", string(t))
	}
	return nil
}

// Publication is something a user can subscribe to.
type Publication string

const (
	// PublicationMembershipRequestsCreate notifies org admins when a user applies to join.
	PublicationMembershipRequestsCreate Publication = "membership_requests.create"
	// PublicationMembershipsCreate notifies org members when a user joins.
	PublicationMembershipsCreate Publication = "memberships.create"
	// PublicationApplicationsCreate notifies org members when an application is created.
	PublicationApplicationsCreate Publication = "applications.create"
	// PublicationVersionsCreate notifies watchers when a version is created.
	PublicationVersionsCreate Publication = "versions.create"
)

func (p Publication) String() string { return string(p) }

// Unrecognized reports whether p is not one of the known publications.
func (p Publication) Unrecognized() bool {
	switch p {
	case PublicationMembershipRequestsCreate, PublicationMembershipsCreate,
		PublicationApplicationsCreate, PublicationVersionsCreate:
		return false
	}
	return true
}
