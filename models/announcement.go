package models

import "time"

// Announcement is a circuit notice. Bereavement notices fill the optional
// deceased/burial fields.
type Announcement struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	DeceasedName     *string    `json:"deceased_name"`
	ClassLeaderName  *string    `json:"class_leader_name"`
	DeathDate        *Timestamp `json:"death_date"`
	BurialLocation   *string    `json:"burial_location"`
	FinancialStatus  *string    `json:"financial_status"`
	AttendanceRecord *string    `json:"attendance_record"`
	CreatedBy        string     `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Announcement model.
func (a Announcement) TableName() string {
	return "announcements"
}

// AnnouncementInput is the body of POST /api/announcements.
type AnnouncementInput struct {
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	DeceasedName     *string    `json:"deceased_name,omitempty"`
	ClassLeaderName  *string    `json:"class_leader_name,omitempty"`
	DeathDate        *Timestamp `json:"death_date,omitempty"`
	BurialLocation   *string    `json:"burial_location,omitempty"`
	FinancialStatus  *string    `json:"financial_status,omitempty"`
	AttendanceRecord *string    `json:"attendance_record,omitempty"`
}
