package model

import "time"

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The booking engine never sees this struct; it treats
// the JWT subject (the username) as an opaque identity string.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name, also the booking identity.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
    ID           uint64    // users.id
    Username     string    // users.username
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
}
