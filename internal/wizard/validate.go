package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"resumebuilder-backend/internal/resumes"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateStep checks the section of data belonging to the given step and
// returns one message per violated rule. An empty slice means the step is
// complete and the flow may advance past it. Steps outside the known flow
// validate clean.
func ValidateStep(step Step, data *resumes.ResumeData) []string {
	var errs []string

	switch step {
	case StepProfileInfo:
		p := data.ProfileInfo
		if strings.TrimSpace(p.FullName) == "" {
			errs = append(errs, "Full Name is required")
		}
		if strings.TrimSpace(p.Designation) == "" {
			errs = append(errs, "Designation is required")
		}
		if strings.TrimSpace(p.Summary) == "" {
			errs = append(errs, "Summary is required")
		}

	case StepContactInfo:
		c := data.ContactInfo
		if strings.TrimSpace(c.Email) == "" || !emailRe.MatchString(c.Email) {
			errs = append(errs, "Valid email is required.")
		}
		if strings.TrimSpace(c.Phone) == "" {
			errs = append(errs, "Valid 10-digit phone number is required")
		}

	case StepWorkExperience:
		for i, exp := range data.WorkExperience {
			if strings.TrimSpace(exp.Company) == "" {
				errs = append(errs, fmt.Sprintf("Company is required in experience %d", i+1))
			}
			if strings.TrimSpace(exp.Role) == "" {
				errs = append(errs, fmt.Sprintf("Role is required in experience %d", i+1))
			}
			if exp.StartDate == "" || exp.EndDate == "" {
				errs = append(errs, fmt.Sprintf("Start and End dates are required in experience %d", i+1))
			}
		}

	case StepEducationInfo:
		for i, edu := range data.Education {
			if strings.TrimSpace(edu.Degree) == "" {
				errs = append(errs, fmt.Sprintf("Degree is required in education %d", i+1))
			}
			if strings.TrimSpace(edu.Institution) == "" {
				errs = append(errs, fmt.Sprintf("Institution is required in education %d", i+1))
			}
			if edu.StartDate == "" || edu.EndDate == "" {
				errs = append(errs, fmt.Sprintf("Start and End dates are required in education %d", i+1))
			}
		}

	case StepSkills:
		for i, skill := range data.Skills {
			if strings.TrimSpace(skill.Name) == "" {
				errs = append(errs, fmt.Sprintf("Skill name is required in skill %d", i+1))
			}
			if skill.Progress < 1 || skill.Progress > 100 {
				errs = append(errs, fmt.Sprintf("Skill progress must be between 1 and 100 in skill %d", i+1))
			}
		}

	case StepProjects:
		for i, proj := range data.Projects {
			if strings.TrimSpace(proj.Title) == "" {
				errs = append(errs, fmt.Sprintf("Project title is required in project %d", i+1))
			}
			if strings.TrimSpace(proj.Description) == "" {
				errs = append(errs, fmt.Sprintf("Project description is required in project %d", i+1))
			}
		}

	case StepCertifications:
		for i, cert := range data.Certifications {
			if strings.TrimSpace(cert.Title) == "" {
				errs = append(errs, fmt.Sprintf("Certification title is required in certification %d", i+1))
			}
			if strings.TrimSpace(cert.Issuer) == "" {
				errs = append(errs, fmt.Sprintf("Issuer is required in certification %d", i+1))
			}
		}

	case StepAdditionalInfo:
		hasLanguage := false
		for _, lang := range data.Languages {
			if strings.TrimSpace(lang.Name) != "" {
				hasLanguage = true
				break
			}
		}
		if !hasLanguage {
			errs = append(errs, "At least one language is required")
		}
		hasInterest := false
		for _, interest := range data.Interests {
			if strings.TrimSpace(interest) != "" {
				hasInterest = true
				break
			}
		}
		if !hasInterest {
			errs = append(errs, "At least one interest is required")
		}
	}

	return errs
}
