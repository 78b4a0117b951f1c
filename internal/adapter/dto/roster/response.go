package roster

// TeamResponse represents a team
type TeamResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// MemberResponse represents a created member
type MemberResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// MemberListItem represents a member in the listing. Teams is the
// comma separated team names, or null when the member has none.
type MemberListItem struct {
	ID       uint    `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Teams    *string `json:"teams"`
}
