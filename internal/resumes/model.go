package resumes

import "time"

// Template selects the visual layout and its positional color palette.
// Palette slots are a rendering contract: 0=background, 1=primary,
// 3=secondary.
type Template struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
}

// ProfileInfo is the top-of-resume identity block.
type ProfileInfo struct {
	ProfilePreviewURL string `json:"profilePreviewUrl"`
	FullName          string `json:"fullName"`
	Designation       string `json:"designation"`
	Summary           string `json:"summary"`
}

// ContactInfo holds the contact step fields.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// WorkExperience is one work history entry. Dates use "YYYY-MM".
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill pairs a name with a 0-100 proficiency.
type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// Project is one portfolio entry.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHub      string `json:"github"`
	LiveDemo    string `json:"liveDemo"`
}

// Certification is one certification entry.
type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Language pairs a name with a 0-100 proficiency.
type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// ResumeData is the root aggregate that flows between client and server.
// Section order is display order and is preserved across edits. The
// *Key fields are object-store bookkeeping and never leave the server.
type ResumeData struct {
	ID             string           `json:"id"`
	UserID         string           `json:"-"`
	Title          string           `json:"title"`
	ThumbnailLink  string           `json:"thumbnailLink"`
	ThumbnailKey   string           `json:"-"`
	ProfileImgKey  string           `json:"-"`
	Template       Template         `json:"template"`
	ProfileInfo    ProfileInfo      `json:"profileInfo"`
	ContactInfo    ContactInfo      `json:"contactInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Interests      []string         `json:"interests"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// NewDefault builds the blank editing shape for a freshly named resume.
// Every array section carries exactly one blank entry so the wizard always
// has a row to render; blanks are pruned only at the display/export boundary.
func NewDefault(title string) ResumeData {
	return ResumeData{
		Title:          title,
		ProfileInfo:    ProfileInfo{},
		ContactInfo:    ContactInfo{},
		WorkExperience: []WorkExperience{{}},
		Education:      []Education{{}},
		Skills:         []Skill{{}},
		Projects:       []Project{{}},
		Certifications: []Certification{{}},
		Languages:      []Language{{}},
		Interests:      []string{""},
	}
}
