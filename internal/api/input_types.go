package api

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type startCycleInput struct {
	Notes string `json:"notes"`
}

type logIssueInput struct {
	Problem  string `json:"problem"`
	Severity int    `json:"severity"`
	Notes    string `json:"notes"`
}

type customAidInput struct {
	Problem     string `json:"problem"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type curatedAidInput struct {
	Problem      string `json:"problem"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
	ForAccountID *uint  `json:"for_account_id"`
}

type lookoutCreateInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ShowOnDate    string `json:"show_on_date"`
	ShowUntilDate string `json:"show_until_date"`
	Priority      int    `json:"priority"`
}

type adminLookoutInput struct {
	lookoutCreateInput
	TrackedAccountID uint `json:"tracked_account_id"`
}

type createLinkInput struct {
	TrackedAccountID uint  `json:"tracked_account_id"`
	PartnerID        *uint `json:"partner_id"`
}

type reassignPartnerInput struct {
	PartnerID *uint `json:"partner_id"`
}

type claimLinkInput struct {
	InviteCode string `json:"invite_code"`
}
