package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Nested sections are stored as
// JSONB columns so array order survives round-trips unchanged.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `
id, user_id, title, thumbnail_link, thumbnail_key, profile_img_key,
template, profile_info, contact_info,
work_experience, education, skills, projects, certifications, languages, interests,
created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume ResumeData) error {
	const query = `
INSERT INTO resumes (
    id, user_id, title, thumbnail_link, thumbnail_key, profile_img_key,
    template, profile_info, contact_info,
    work_experience, education, skills, projects, certifications, languages, interests,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	cols, err := jsonColumns(resume)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		nullableString(resume.ThumbnailLink),
		nullableString(resume.ThumbnailKey),
		nullableString(resume.ProfileImgKey),
		cols.template,
		cols.profileInfo,
		cols.contactInfo,
		cols.workExperience,
		cols.education,
		cols.skills,
		cols.projects,
		cols.certifications,
		cols.languages,
		cols.interests,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (ResumeData, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResumeData{}, ErrNotFound
		}
		return ResumeData{}, err
	}
	return resume, nil
}

// ListByUser returns a user's resumes, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]ResumeData, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResumeData
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update replaces all editable columns of an existing resume.
func (r *PGRepo) Update(ctx context.Context, resume ResumeData) error {
	const query = `
UPDATE resumes SET
    title = $2,
    thumbnail_link = $3,
    thumbnail_key = $4,
    profile_img_key = $5,
    template = $6,
    profile_info = $7,
    contact_info = $8,
    work_experience = $9,
    education = $10,
    skills = $11,
    projects = $12,
    certifications = $13,
    languages = $14,
    interests = $15,
    updated_at = now()
WHERE id = $1`

	cols, err := jsonColumns(resume)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.Title,
		nullableString(resume.ThumbnailLink),
		nullableString(resume.ThumbnailKey),
		nullableString(resume.ProfileImgKey),
		cols.template,
		cols.profileInfo,
		cols.contactInfo,
		cols.workExperience,
		cols.education,
		cols.skills,
		cols.projects,
		cols.certifications,
		cols.languages,
		cols.interests,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume row.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type sectionColumns struct {
	template       []byte
	profileInfo    []byte
	contactInfo    []byte
	workExperience []byte
	education      []byte
	skills         []byte
	projects       []byte
	certifications []byte
	languages      []byte
	interests      []byte
}

func jsonColumns(resume ResumeData) (sectionColumns, error) {
	var cols sectionColumns
	var err error
	marshal := func(v any) []byte {
		if err != nil {
			return nil
		}
		var raw []byte
		raw, err = json.Marshal(v)
		return raw
	}
	cols.template = marshal(resume.Template)
	cols.profileInfo = marshal(resume.ProfileInfo)
	cols.contactInfo = marshal(resume.ContactInfo)
	cols.workExperience = marshal(resume.WorkExperience)
	cols.education = marshal(resume.Education)
	cols.skills = marshal(resume.Skills)
	cols.projects = marshal(resume.Projects)
	cols.certifications = marshal(resume.Certifications)
	cols.languages = marshal(resume.Languages)
	cols.interests = marshal(resume.Interests)
	if err != nil {
		return sectionColumns{}, fmt.Errorf("marshal resume sections: %w", err)
	}
	return cols, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (ResumeData, error) {
	var resume ResumeData
	var thumbnailLink, thumbnailKey, profileImgKey sql.NullString
	var template, profileInfo, contactInfo []byte
	var workExperience, education, skills, projects, certifications, languages, interests []byte

	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&thumbnailLink,
		&thumbnailKey,
		&profileImgKey,
		&template,
		&profileInfo,
		&contactInfo,
		&workExperience,
		&education,
		&skills,
		&projects,
		&certifications,
		&languages,
		&interests,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return ResumeData{}, err
	}

	resume.ThumbnailLink = thumbnailLink.String
	resume.ThumbnailKey = thumbnailKey.String
	resume.ProfileImgKey = profileImgKey.String

	var err error
	unmarshal := func(raw []byte, v any) {
		if err != nil || len(raw) == 0 {
			return
		}
		err = json.Unmarshal(raw, v)
	}
	unmarshal(template, &resume.Template)
	unmarshal(profileInfo, &resume.ProfileInfo)
	unmarshal(contactInfo, &resume.ContactInfo)
	unmarshal(workExperience, &resume.WorkExperience)
	unmarshal(education, &resume.Education)
	unmarshal(skills, &resume.Skills)
	unmarshal(projects, &resume.Projects)
	unmarshal(certifications, &resume.Certifications)
	unmarshal(languages, &resume.Languages)
	unmarshal(interests, &resume.Interests)
	if err != nil {
		return ResumeData{}, fmt.Errorf("unmarshal resume sections: %w", err)
	}
	return resume, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
