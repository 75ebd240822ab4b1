package resumes

// Immutable update operations. Every operation returns a new ResumeData with
// only the touched branch replaced; untouched slices keep their backing
// arrays so shallow-equality consumers skip unchanged sections. Each section
// has its own typed operation, so a wrong section/element pairing cannot
// compile. Out-of-bounds indexes are a silent no-op.

func replaceAt[T any](items []T, index int, item T) []T {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[index] = item
	return out
}

func updateAt[T any](items []T, index int, merge func(T) T) []T {
	if index < 0 || index >= len(items) || merge == nil {
		return items
	}
	return replaceAt(items, index, merge(items[index]))
}

func appendTo[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func removeAt[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

// WithTitle returns a copy with the display title replaced.
func (d ResumeData) WithTitle(title string) ResumeData {
	d.Title = title
	return d
}

// WithTemplate returns a copy with the template selection replaced.
func (d ResumeData) WithTemplate(t Template) ResumeData {
	d.Template = t
	return d
}

// WithProfileInfo returns a copy with the profile block replaced.
func (d ResumeData) WithProfileInfo(p ProfileInfo) ResumeData {
	d.ProfileInfo = p
	return d
}

// WithContactInfo returns a copy with the contact block replaced.
func (d ResumeData) WithContactInfo(c ContactInfo) ResumeData {
	d.ContactInfo = c
	return d
}

func (d ResumeData) AppendWorkExperience(item WorkExperience) ResumeData {
	d.WorkExperience = appendTo(d.WorkExperience, item)
	return d
}

func (d ResumeData) UpdateWorkExperience(index int, merge func(WorkExperience) WorkExperience) ResumeData {
	d.WorkExperience = updateAt(d.WorkExperience, index, merge)
	return d
}

func (d ResumeData) RemoveWorkExperience(index int) ResumeData {
	d.WorkExperience = removeAt(d.WorkExperience, index)
	return d
}

func (d ResumeData) AppendEducation(item Education) ResumeData {
	d.Education = appendTo(d.Education, item)
	return d
}

func (d ResumeData) UpdateEducation(index int, merge func(Education) Education) ResumeData {
	d.Education = updateAt(d.Education, index, merge)
	return d
}

func (d ResumeData) RemoveEducation(index int) ResumeData {
	d.Education = removeAt(d.Education, index)
	return d
}

func (d ResumeData) AppendSkill(item Skill) ResumeData {
	d.Skills = appendTo(d.Skills, item)
	return d
}

func (d ResumeData) UpdateSkill(index int, merge func(Skill) Skill) ResumeData {
	d.Skills = updateAt(d.Skills, index, merge)
	return d
}

func (d ResumeData) RemoveSkill(index int) ResumeData {
	d.Skills = removeAt(d.Skills, index)
	return d
}

func (d ResumeData) AppendProject(item Project) ResumeData {
	d.Projects = appendTo(d.Projects, item)
	return d
}

func (d ResumeData) UpdateProject(index int, merge func(Project) Project) ResumeData {
	d.Projects = updateAt(d.Projects, index, merge)
	return d
}

func (d ResumeData) RemoveProject(index int) ResumeData {
	d.Projects = removeAt(d.Projects, index)
	return d
}

func (d ResumeData) AppendCertification(item Certification) ResumeData {
	d.Certifications = appendTo(d.Certifications, item)
	return d
}

func (d ResumeData) UpdateCertification(index int, merge func(Certification) Certification) ResumeData {
	d.Certifications = updateAt(d.Certifications, index, merge)
	return d
}

func (d ResumeData) RemoveCertification(index int) ResumeData {
	d.Certifications = removeAt(d.Certifications, index)
	return d
}

func (d ResumeData) AppendLanguage(item Language) ResumeData {
	d.Languages = appendTo(d.Languages, item)
	return d
}

func (d ResumeData) UpdateLanguage(index int, merge func(Language) Language) ResumeData {
	d.Languages = updateAt(d.Languages, index, merge)
	return d
}

func (d ResumeData) RemoveLanguage(index int) ResumeData {
	d.Languages = removeAt(d.Languages, index)
	return d
}

// Interests are plain strings, so updates replace the whole element.
func (d ResumeData) AppendInterest(value string) ResumeData {
	d.Interests = appendTo(d.Interests, value)
	return d
}

func (d ResumeData) UpdateInterest(index int, value string) ResumeData {
	d.Interests = replaceAt(d.Interests, index, value)
	return d
}

func (d ResumeData) RemoveInterest(index int) ResumeData {
	d.Interests = removeAt(d.Interests, index)
	return d
}
