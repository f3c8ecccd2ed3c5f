package models

// ThrowResult is the outcome of a single cake throw. Success is false when
// the member's daily limit was already reached; Member always carries the
// post-transaction snapshot, including the window fields.
type ThrowResult struct {
	Success bool
	Member  *Member
}

// DeleteResult is the outcome of a user data deletion. When Deleted is
// false the user had no stored data and nothing was changed. User is the
// pre-deletion snapshot when Deleted is true.
type DeleteResult struct {
	Deleted bool
	User    *User
}
