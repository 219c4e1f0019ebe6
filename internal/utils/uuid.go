package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for users, members, finance entries,
// announcements and files. Version 7 UUIDs sort by creation time, which keeps
// the primary key indexes append-mostly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
