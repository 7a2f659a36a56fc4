package models

import "time"

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	XP           int       `bson:"xp" json:"xp"`
	Level        int       `bson:"level" json:"level"`
	Badges       []string  `bson:"badges" json:"badges"`
	Language     string    `bson:"language" json:"language"`
}

// PublicUser is the representation returned to clients; it never carries
// the password hash.
type PublicUser struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	XP       int      `json:"xp"`
	Level    int      `json:"level"`
	Badges   []string `json:"badges"`
	Language string   `json:"language"`
}

func (u *User) Public() PublicUser {
	badges := u.Badges
	if badges == nil {
		badges = []string{}
	}
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		XP:       u.XP,
		Level:    u.Level,
		Badges:   badges,
		Language: u.Language,
	}
}
