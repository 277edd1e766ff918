package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Section lists are stored as JSONB
// columns; the record is always read and written whole.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, thumbnail_link, profile_info, contact_info, work_experience, education, skills, projects, certifications, languages, interests, created_at, updated_at`

// ListByUser returns all resumes for a user, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id, user_id, title, thumbnail_link, profile_info, contact_info, work_experience,
    education, skills, projects, certifications, languages, interests, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	sections, err := marshalSections(resume)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		nullableString(resume.ThumbnailLink),
		sections.profileInfo,
		sections.contactInfo,
		sections.workExperience,
		sections.education,
		sections.skills,
		sections.projects,
		sections.certifications,
		sections.languages,
		sections.interests,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID returns a resume by ID for a user. Foreign-owned and missing
// records are both ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, resumeID, userID)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// Update persists the full current state of a resume and refreshes updated_at.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET title = $1,
    thumbnail_link = $2,
    profile_info = $3,
    contact_info = $4,
    work_experience = $5,
    education = $6,
    skills = $7,
    projects = $8,
    certifications = $9,
    languages = $10,
    interests = $11,
    updated_at = $12
WHERE id = $13 AND user_id = $14`

	sections, err := marshalSections(resume)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query,
		resume.Title,
		nullableString(resume.ThumbnailLink),
		sections.profileInfo,
		sections.contactInfo,
		sections.workExperience,
		sections.education,
		sections.skills,
		sections.projects,
		sections.certifications,
		sections.languages,
		sections.interests,
		resume.UpdatedAt,
		resume.ID,
		resume.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume. Returns true iff a row was removed.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) (bool, error) {
	const query = `
DELETE FROM resumes
WHERE id = $1 AND user_id = $2`

	res, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type sectionJSON struct {
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

func marshalSections(resume Resume) (sectionJSON, error) {
	var out sectionJSON
	var err error
	if out.profileInfo, err = json.Marshal(resume.ProfileInfo); err != nil {
		return out, fmt.Errorf("marshal profile_info: %w", err)
	}
	if out.contactInfo, err = json.Marshal(resume.ContactInfo); err != nil {
		return out, fmt.Errorf("marshal contact_info: %w", err)
	}
	if out.workExperience, err = json.Marshal(resume.WorkExperience); err != nil {
		return out, fmt.Errorf("marshal work_experience: %w", err)
	}
	if out.education, err = json.Marshal(resume.Education); err != nil {
		return out, fmt.Errorf("marshal education: %w", err)
	}
	if out.skills, err = json.Marshal(resume.Skills); err != nil {
		return out, fmt.Errorf("marshal skills: %w", err)
	}
	if out.projects, err = json.Marshal(resume.Projects); err != nil {
		return out, fmt.Errorf("marshal projects: %w", err)
	}
	if out.certifications, err = json.Marshal(resume.Certifications); err != nil {
		return out, fmt.Errorf("marshal certifications: %w", err)
	}
	if out.languages, err = json.Marshal(resume.Languages); err != nil {
		return out, fmt.Errorf("marshal languages: %w", err)
	}
	if out.interests, err = json.Marshal(resume.Interests); err != nil {
		return out, fmt.Errorf("marshal interests: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var thumbnail sql.NullString
	var profileInfo, contactInfo, workExperience, education []byte
	var skills, projects, certifications, languages, interests []byte

	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&thumbnail,
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
	)
	if err != nil {
		return Resume{}, err
	}

	if thumbnail.Valid {
		resume.ThumbnailLink = thumbnail.String
	}
	for _, col := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"profile_info", profileInfo, &resume.ProfileInfo},
		{"contact_info", contactInfo, &resume.ContactInfo},
		{"work_experience", workExperience, &resume.WorkExperience},
		{"education", education, &resume.Education},
		{"skills", skills, &resume.Skills},
		{"projects", projects, &resume.Projects},
		{"certifications", certifications, &resume.Certifications},
		{"languages", languages, &resume.Languages},
		{"interests", interests, &resume.Interests},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return Resume{}, fmt.Errorf("unmarshal %s: %w", col.name, err)
		}
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
