package models

import (
	"encoding/json"
	"fmt"
)

// Role defines the position a user holds in the circuit. The value controls
// which administrative routes the user may call.
type Role string

const (
	// RoleAdmin is the system administrator. Only administrators may list,
	// deactivate or reactivate users.
	RoleAdmin Role = "admin"

	// RoleReverend is the circuit minister.
	RoleReverend Role = "rev"

	// RoleCircuitSteward manages circuit-wide finances and records.
	RoleCircuitSteward Role = "circuit_steward"

	// RoleSocietySteward manages the records of a single society.
	RoleSocietySteward Role = "society_steward"

	// RoleSecretary keeps members, announcements and minutes.
	RoleSecretary Role = "secretary"

	// RoleClassLeader leads a class within a society.
	RoleClassLeader Role = "class_leader"
)

// Roles lists every accepted Role in display order.
var Roles = []Role{
	RoleAdmin,
	RoleReverend,
	RoleCircuitSteward,
	RoleSocietySteward,
	RoleSecretary,
	RoleClassLeader,
}

// Valid reports whether r is one of the fixed roles.
//
// Decoding from JSON rejects unknown non-empty values; an empty value decodes
// and is left for request validation to reject as missing.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReverend, RoleCircuitSteward, RoleSocietySteward, RoleSecretary, RoleClassLeader:
		return true
	}
	return false
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s != "" && !Role(s).Valid() {
		return fmt.Errorf("%w: role %q", ErrUnknownEnumValue, s)
	}
	*r = Role(s)
	return nil
}

// Society is one of the six societies of the circuit.
type Society string

const (
	SocietyEmbalenhle Society = "embalenhle"
	SocietySecunda    Society = "secunda"
	SocietyEvander    Society = "evander"
	SocietyKMT        Society = "kmt"
	SocietyEbenezer   Society = "ebenezer"
	SocietyEmzinoni   Society = "emzinoni"
)

// Societies lists every Society. Statistics report a count for each entry,
// including societies without members.
var Societies = []Society{
	SocietyEmbalenhle,
	SocietySecunda,
	SocietyEvander,
	SocietyKMT,
	SocietyEbenezer,
	SocietyEmzinoni,
}

// Valid reports whether s is one of the fixed societies.
func (s Society) Valid() bool {
	switch s {
	case SocietyEmbalenhle, SocietySecunda, SocietyEvander, SocietyKMT, SocietyEbenezer, SocietyEmzinoni:
		return true
	}
	return false
}

func (s *Society) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v != "" && !Society(v).Valid() {
		return fmt.Errorf("%w: society %q", ErrUnknownEnumValue, v)
	}
	*s = Society(v)
	return nil
}

// ParseSociety converts a query-string value into a Society.
// An empty string yields an empty Society and no error.
func ParseSociety(v string) (Society, error) {
	if v == "" {
		return "", nil
	}
	if !Society(v).Valid() {
		return "", fmt.Errorf("%w: society %q", ErrUnknownEnumValue, v)
	}
	return Society(v), nil
}

// Organization is one of the nine circuit organizations a user can belong to.
type Organization string

const (
	OrganizationChildrensMinistry  Organization = "childrens_ministry"
	OrganizationJuniorManyano      Organization = "junior_manyano"
	OrganizationWesleyGuild        Organization = "wesley_guild"
	OrganizationYoungMensGuild     Organization = "young_mens_guild"
	OrganizationYoungWomensManyano Organization = "young_womens_manyano"
	OrganizationWomensManyano      Organization = "womens_manyano"
	OrganizationWomensFellowship   Organization = "womens_fellowship"
	OrganizationLocationPreachers  Organization = "location_preachers"
	OrganizationMusicAssociation   Organization = "music_association"
)

// Organizations lists every Organization.
var Organizations = []Organization{
	OrganizationChildrensMinistry,
	OrganizationJuniorManyano,
	OrganizationWesleyGuild,
	OrganizationYoungMensGuild,
	OrganizationYoungWomensManyano,
	OrganizationWomensManyano,
	OrganizationWomensFellowship,
	OrganizationLocationPreachers,
	OrganizationMusicAssociation,
}

// Valid reports whether o is one of the fixed organizations.
func (o Organization) Valid() bool {
	switch o {
	case OrganizationChildrensMinistry,
		OrganizationJuniorManyano,
		OrganizationWesleyGuild,
		OrganizationYoungMensGuild,
		OrganizationYoungWomensManyano,
		OrganizationWomensManyano,
		OrganizationWomensFellowship,
		OrganizationLocationPreachers,
		OrganizationMusicAssociation:
		return true
	}
	return false
}

func (o *Organization) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v != "" && !Organization(v).Valid() {
		return fmt.Errorf("%w: organization %q", ErrUnknownEnumValue, v)
	}
	*o = Organization(v)
	return nil
}
