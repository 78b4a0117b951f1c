package response

// RespondRequest carries the action of a POSTed response. The query string
// takes precedence when both are present.
type RespondRequest struct {
	Action string `json:"action" query:"action"`
}

// RespondResponse confirms a recorded response
type RespondResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Meeting      string `json:"meeting"`
	InviteeEmail string `json:"invitee_email"`
	Action       string `json:"action"`
}
