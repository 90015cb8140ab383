package models

import (
	"time"
)

// User is a node in the social graph.
type User struct {
	UserID    string `gorm:"type:char(36);primaryKey"`
	Name      string `gorm:"size:50;not null;uniqueIndex"`
	Age       int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Hobbies   []Hobby `gorm:"many2many:user_hobbies;joinForeignKey:user_id;joinReferences:hobby_id"`
}

// Hobby is a tag users attach to themselves. Hobbies are created lazily on
// first attach and shared across users by name.
type Hobby struct {
	HobbyID   string `gorm:"type:char(36);primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time
}

// UserHobby is the join row between a user and a hobby. The composite
// primary key guarantees at most one link per pair.
type UserHobby struct {
	UserID  string `gorm:"type:char(36);primaryKey"`
	HobbyID string `gorm:"type:char(36);primaryKey"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// TableName overrides the table name for Hobby
func (Hobby) TableName() string {
	return "hobbies"
}

// TableName overrides the table name for UserHobby
func (UserHobby) TableName() string {
	return "user_hobbies"
}
