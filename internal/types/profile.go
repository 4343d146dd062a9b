package types

// UserProfile is the editable job-seeker profile behind /api/user-profiles.
type UserProfile struct {
	ID        string   `json:"_id,omitempty"`
	UserID    string   `json:"user,omitempty"`
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Location  string   `json:"location,omitempty"`
	Headline  string   `json:"headline,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Education []string `json:"education,omitempty"`
}

// CompanyProfile is the employer-side profile behind /api/company-profiles.
type CompanyProfile struct {
	ID          string `json:"_id,omitempty"`
	UserID      string `json:"user,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Candidate is one row of GET /api/jobs/{id}/candidates: the applying user
// plus their application.
type Candidate struct {
	Application Application `json:"application"`
	User        User        `json:"user"`
	CV          *CV         `json:"cv,omitempty"`
}
