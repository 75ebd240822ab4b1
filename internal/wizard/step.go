package wizard

import "math"

// Step identifies one page of the resume editing flow.
type Step string

const (
	StepProfileInfo    Step = "profile-info"
	StepContactInfo    Step = "contact-info"
	StepWorkExperience Step = "work-experience"
	StepEducationInfo  Step = "education-info"
	StepSkills         Step = "skills"
	StepProjects       Step = "projects"
	StepCertifications Step = "certifications"
	StepAdditionalInfo Step = "additionalInfo"
)

// Steps lists the flow pages in order. The order is fixed; navigation
// moves one step at a time in either direction.
var Steps = []Step{
	StepProfileInfo,
	StepContactInfo,
	StepWorkExperience,
	StepEducationInfo,
	StepSkills,
	StepProjects,
	StepCertifications,
	StepAdditionalInfo,
}

// IndexOf returns the position of s in the flow, or -1 when s is not a
// known step.
func IndexOf(s Step) int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Progress reports percentage completion for the given step index,
// rounded to the nearest integer. The first step is 0 and the last 100.
func Progress(index int) int {
	last := len(Steps) - 1
	if index <= 0 {
		return 0
	}
	if index >= last {
		return 100
	}
	return int(math.Round(float64(index) / float64(last) * 100))
}

// IsFirst reports whether index is the first step of the flow.
func IsFirst(index int) bool { return index <= 0 }

// IsLast reports whether index is the last step of the flow.
func IsLast(index int) bool { return index >= len(Steps)-1 }
