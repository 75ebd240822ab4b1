package resumes

// UpdatePayload is the PUT /update-resume body. Update is a full-section
// replace with last-write-wins per field: a nil section means "no change"
// and falls back to the stored value; a present section (even empty)
// replaces the stored one wholesale. This mirrors the `field || existing`
// merge of the original API; clearing a scalar like the title is therefore
// not possible through this endpoint.
type UpdatePayload struct {
	Title          *string          `json:"title"`
	ThumbnailLink  *string          `json:"thumbnailLink"`
	Template       *Template        `json:"template"`
	ProfileInfo    *ProfileInfo     `json:"profileInfo"`
	ContactInfo    *ContactInfo     `json:"contactInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Interests      []string         `json:"interests"`
}

// CreatePayload is the POST /create-resume body. The profile image is an
// optional base64 data URI uploaded to the asset store before the record
// is written.
type CreatePayload struct {
	Title        string `json:"title"`
	ProfileImage string `json:"profileImage"`
}

// ImagePayload is the PUT /update-resume-image body. Both fields are base64
// data URIs; either may be omitted.
type ImagePayload struct {
	ProfileImage string `json:"profileImage"`
	Thumbnail    string `json:"thumbnail"`
}

// merged applies the payload on top of the stored resume.
func merged(existing ResumeData, p UpdatePayload) ResumeData {
	out := existing
	if p.Title != nil && *p.Title != "" {
		out.Title = *p.Title
	}
	if p.ThumbnailLink != nil && *p.ThumbnailLink != "" {
		out.ThumbnailLink = *p.ThumbnailLink
	}
	if p.Template != nil {
		out.Template = *p.Template
	}
	if p.ProfileInfo != nil {
		out.ProfileInfo = *p.ProfileInfo
	}
	if p.ContactInfo != nil {
		out.ContactInfo = *p.ContactInfo
	}
	if p.WorkExperience != nil {
		out.WorkExperience = p.WorkExperience
	}
	if p.Education != nil {
		out.Education = p.Education
	}
	if p.Skills != nil {
		out.Skills = p.Skills
	}
	if p.Projects != nil {
		out.Projects = p.Projects
	}
	if p.Certifications != nil {
		out.Certifications = p.Certifications
	}
	if p.Languages != nil {
		out.Languages = p.Languages
	}
	if p.Interests != nil {
		out.Interests = p.Interests
	}
	return out
}
