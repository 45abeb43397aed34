package models

import "time"

// User mirrors the profile document kept for each authenticated identity.
type User struct {
	UID         string    `firestore:"-" json:"uid"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	PhotoURL    string    `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

// AuthSession is returned to a client after a successful sign-up or sign-in.
type AuthSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
