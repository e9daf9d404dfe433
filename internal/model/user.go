package model

// User represents an application user record as stored in the
// `users` table. A user owns zero or more movies; deleting a user
// removes all of its movies. These structs are used internally by
// the repository layer, so no JSON tags are needed.
//
// Fields:
//  ID   – primary key identifier of the user.
//  Name – display name, required and non-empty.
type User struct {
	ID   int64  // users.id
	Name string // users.name
}
