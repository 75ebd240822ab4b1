package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"resumebuilder-backend/internal/resumes"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// baseWidth is the design width the templates are laid out against.
// containerWidth scales every dimension relative to it.
const baseWidth = 800.0

var knownTemplates = map[string]string{
	"01": "template01.gohtml",
	"02": "template02.gohtml",
	"03": "template03.gohtml",
}

var templates = template.Must(template.New("resume").Funcs(template.FuncMap{
	"yearMonth": formatYearMonth,
	"barWidth":  barWidth,
	"join":      strings.Join,
}).ParseFS(templateFS, "templates/*.gohtml"))

// view is the data handed to the templates. Resume holds a pruned copy:
// placeholder entries the editor seeds never reach the page.
type view struct {
	Resume  resumes.ResumeData
	Palette Palette
	Width   int
	Scale   float64
	Px      func(base float64) template.CSS
}

// Render produces the standalone HTML document for one resume. Unknown
// template ids fall back to "01". containerWidth below 1 uses the design
// width. Rendering is pure; the same inputs always yield the same page.
func Render(templateID string, data *resumes.ResumeData, colors []string, containerWidth int) (string, error) {
	if data == nil {
		return "", fmt.Errorf("render: nil resume data")
	}
	name, ok := knownTemplates[templateID]
	if !ok {
		name = knownTemplates["01"]
	}
	if containerWidth < 1 {
		containerWidth = int(baseWidth)
	}
	scale := float64(containerWidth) / baseWidth

	v := view{
		Resume:  prune(*data),
		Palette: NormalizePalette(colors),
		Width:   containerWidth,
		Scale:   scale,
		Px: func(base float64) template.CSS {
			return template.CSS(fmt.Sprintf("%.2fpx", base*scale))
		},
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("render template %s: %w", templateID, err)
	}
	return buf.String(), nil
}

// barWidth clamps a skill or language progress value to 0..100 and
// returns it as a CSS percentage for the proficiency bar.
func barWidth(progress int) template.CSS {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return template.CSS(fmt.Sprintf("%d%%", progress))
}

// formatYearMonth turns "2022-01" into "Jan 2022". Values that do not
// parse pass through unchanged.
func formatYearMonth(value string) string {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2006")
}

// prune drops the blank placeholder entries from every array section so
// the rendered page only shows content the user actually filled in. The
// stored resume keeps the placeholders.
func prune(r resumes.ResumeData) resumes.ResumeData {
	r.WorkExperience = filter(r.WorkExperience, func(w resumes.WorkExperience) bool {
		return anyFilled(w.Company, w.Role, w.StartDate, w.EndDate, w.Description)
	})
	r.Education = filter(r.Education, func(e resumes.Education) bool {
		return anyFilled(e.Degree, e.Institution, e.StartDate, e.EndDate)
	})
	r.Skills = filter(r.Skills, func(s resumes.Skill) bool {
		return strings.TrimSpace(s.Name) != ""
	})
	r.Projects = filter(r.Projects, func(p resumes.Project) bool {
		return anyFilled(p.Title, p.Description, p.GitHub, p.LiveDemo)
	})
	r.Certifications = filter(r.Certifications, func(c resumes.Certification) bool {
		return anyFilled(c.Title, c.Issuer, c.Year)
	})
	r.Languages = filter(r.Languages, func(l resumes.Language) bool {
		return strings.TrimSpace(l.Name) != ""
	})
	r.Interests = filter(r.Interests, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	return r
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func anyFilled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
