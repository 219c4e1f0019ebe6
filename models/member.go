package models

import "time"

// Member is a person on the circuit roll.
type Member struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"full_name"`
	DateOfBirth        Timestamp `json:"date_of_birth"`
	Gender             string    `json:"gender"`
	Title              *string   `json:"title"`
	ResidentialAddress string    `json:"residential_address"`
	EmailAddress       *string   `json:"email_address"`
	Occupation         *string   `json:"occupation"`
	Society            Society   `json:"society"`
	ClassAllocation    *string   `json:"class_allocation"`
	CreatedAt          time.Time `json:"created_at"`
	CreatedBy          string    `json:"created_by"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// MemberInput is the body of member create and update requests.
type MemberInput struct {
	FullName           string    `json:"full_name"`
	DateOfBirth        Timestamp `json:"date_of_birth"`
	Gender             string    `json:"gender"`
	Title              *string   `json:"title,omitempty"`
	ResidentialAddress string    `json:"residential_address"`
	EmailAddress       *string   `json:"email_address,omitempty"`
	Occupation         *string   `json:"occupation,omitempty"`
	Society            Society   `json:"society"`
	ClassAllocation    *string   `json:"class_allocation,omitempty"`
}

// Apply copies the editable fields of in onto m.
func (m *Member) Apply(in MemberInput) {
	m.FullName = in.FullName
	m.DateOfBirth = in.DateOfBirth
	m.Gender = in.Gender
	m.Title = in.Title
	m.ResidentialAddress = in.ResidentialAddress
	m.EmailAddress = in.EmailAddress
	m.Occupation = in.Occupation
	m.Society = in.Society
	m.ClassAllocation = in.ClassAllocation
}

// MemberFilter narrows a member listing. Zero values disable a criterion.
type MemberFilter struct {
	// Society restricts the listing to one society.
	Society Society

	// Search is matched case-insensitively as a substring of the full name
	// or the e-mail address.
	Search string
}
