package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/resume-parser/internal/types"
)

// Tables holding the structured fields of a parse, children of resumes.
// Deletions walk this list before touching the parent row.
var childTables = []string{
	"parsed_data",
	"skills",
	"work_experience",
	"education",
	"certifications",
}

// SaveResume stores an uploaded document and its parse outcome in one
// transaction: the resumes row first, then parsed_data, then the list
// tables. List rows carry order_index so source-text order survives the
// round trip.
func (db *DB) SaveResume(ctx context.Context, input *SaveResumeInput, parsed types.ParsedResume) (*Resume, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	var resume Resume
	err = tx.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, file_type, file_size, raw_text,
		                      storage_path, parsing_status, confidence_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, user_id, file_name, file_type, file_size, raw_text,
		           storage_path, parsing_status, confidence_score, created_at, updated_at`,
		input.UserID, input.FileName, nullIfEmpty(input.FileType), input.FileSize,
		input.RawText, nullIfEmpty(input.StoragePath), ParsingStatusCompleted,
		input.ConfidenceScore,
	).Scan(&resume.ID, &resume.UserID, &resume.FileName, &resume.FileType,
		&resume.FileSize, &resume.RawText, &resume.StoragePath,
		&resume.ParsingStatus, &resume.ConfidenceScore,
		&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO parsed_data (resume_id, full_name, email, phone, location,
		                          linkedin_url, github_url, portfolio_url, summary,
		                          total_years_experience)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		resume.ID, parsed.PersonalInfo.FullName, parsed.PersonalInfo.Email,
		parsed.PersonalInfo.Phone, parsed.PersonalInfo.Location,
		parsed.PersonalInfo.LinkedinURL, parsed.PersonalInfo.GithubURL,
		parsed.PersonalInfo.PortfolioURL, parsed.Summary,
		input.TotalYearsExperience,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save parsed data: %w", err)
	}

	for _, skill := range parsed.Skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO skills (resume_id, skill_name, category)
			 VALUES ($1, $2, $3)`,
			resume.ID, skill.Name, skill.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to save skill %s: %w", skill.Name, err)
		}
	}

	for i, exp := range parsed.WorkExperience {
		_, err = tx.Exec(ctx,
			`INSERT INTO work_experience (resume_id, company_name, job_title, location,
			                              start_date, end_date, is_current, description,
			                              order_index)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			resume.ID, exp.CompanyName, exp.JobTitle, exp.Location,
			exp.StartDate, exp.EndDate, exp.IsCurrent, exp.Description, i,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to save work experience: %w", err)
		}
	}

	for i, edu := range parsed.Education {
		_, err = tx.Exec(ctx,
			`INSERT INTO education (resume_id, institution_name, degree, field_of_study,
			                        location, start_date, end_date, gpa, order_index)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			resume.ID, edu.InstitutionName, edu.Degree, edu.FieldOfStudy,
			edu.Location, edu.StartDate, edu.EndDate, edu.GPA, i,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to save education: %w", err)
		}
	}

	for _, cert := range parsed.Certifications {
		_, err = tx.Exec(ctx,
			`INSERT INTO certifications (resume_id, certification_name,
			                             issuing_organization, issue_date)
			 VALUES ($1, $2, $3, $4)`,
			resume.ID, cert.Name, cert.Organization, cert.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to save certification %s: %w", cert.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &resume, nil
}

// GetResume retrieves a resume row and reassembles its structured record.
// Returns nil without error when no row matches.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, *types.ParsedResume, error) {
	var resume Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, file_type, file_size, raw_text,
		        storage_path, parsing_status, confidence_score, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&resume.ID, &resume.UserID, &resume.FileName, &resume.FileType,
		&resume.FileSize, &resume.RawText, &resume.StoragePath,
		&resume.ParsingStatus, &resume.ConfidenceScore,
		&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get resume: %w", err)
	}

	parsed, err := db.loadParsedResume(ctx, resume.ID)
	if err != nil {
		return nil, nil, err
	}
	return &resume, parsed, nil
}

func (db *DB) loadParsedResume(ctx context.Context, resumeID uuid.UUID) (*types.ParsedResume, error) {
	var parsed types.ParsedResume

	err := db.pool.QueryRow(ctx,
		`SELECT full_name, email, phone, location, linkedin_url, github_url,
		        portfolio_url, summary
		 FROM parsed_data WHERE resume_id = $1`,
		resumeID,
	).Scan(&parsed.PersonalInfo.FullName, &parsed.PersonalInfo.Email,
		&parsed.PersonalInfo.Phone, &parsed.PersonalInfo.Location,
		&parsed.PersonalInfo.LinkedinURL, &parsed.PersonalInfo.GithubURL,
		&parsed.PersonalInfo.PortfolioURL, &parsed.Summary)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get parsed data: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, COALESCE(category, '') FROM skills
		 WHERE resume_id = $1 ORDER BY id`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var skill types.Skill
		if err := rows.Scan(&skill.Name, &skill.Category); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		parsed.Skills = append(parsed.Skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}
	rows.Close()

	rows, err = db.pool.Query(ctx,
		`SELECT company_name, job_title, location, start_date, end_date,
		        is_current, description
		 FROM work_experience WHERE resume_id = $1 ORDER BY order_index`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list work experience: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var exp types.WorkExperience
		if err := rows.Scan(&exp.CompanyName, &exp.JobTitle, &exp.Location,
			&exp.StartDate, &exp.EndDate, &exp.IsCurrent, &exp.Description); err != nil {
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		parsed.WorkExperience = append(parsed.WorkExperience, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work experience: %w", err)
	}
	rows.Close()

	rows, err = db.pool.Query(ctx,
		`SELECT institution_name, degree, field_of_study, location, start_date,
		        end_date, gpa
		 FROM education WHERE resume_id = $1 ORDER BY order_index`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var edu types.Education
		if err := rows.Scan(&edu.InstitutionName, &edu.Degree, &edu.FieldOfStudy,
			&edu.Location, &edu.StartDate, &edu.EndDate, &edu.GPA); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		parsed.Education = append(parsed.Education, edu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read education: %w", err)
	}
	rows.Close()

	rows, err = db.pool.Query(ctx,
		`SELECT certification_name, issuing_organization, issue_date
		 FROM certifications WHERE resume_id = $1 ORDER BY id`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cert types.Certification
		if err := rows.Scan(&cert.Name, &cert.Organization, &cert.Date); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		parsed.Certifications = append(parsed.Certifications, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read certifications: %w", err)
	}

	return &parsed, nil
}

// ListResumes retrieves recent uploads, newest first. A nil userID lists
// across all users.
func (db *DB) ListResumes(ctx context.Context, userID *uuid.UUID, limit int) ([]ResumeSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, file_name, file_type, file_size, parsing_status,
	                 confidence_score, created_at
	          FROM resumes`
	args := []any{}
	if userID != nil {
		query += ` WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, *userID, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var r ResumeSummary
		if err := rows.Scan(&r.ID, &r.FileName, &r.FileType, &r.FileSize,
			&r.ParsingStatus, &r.ConfidenceScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

// DeleteResume removes a resume and its structured rows, children first.
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	for _, table := range childTables {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE resume_id = $1`, table), resumeID); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteAllResumes clears the user's history and returns how many resumes
// were removed.
func (db *DB) DeleteAllResumes(ctx context.Context, userID *uuid.UUID) (int, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	for _, table := range childTables {
		query := fmt.Sprintf(
			`DELETE FROM %s WHERE resume_id IN (SELECT id FROM resumes)`, table)
		args := []any{}
		if userID != nil {
			query = fmt.Sprintf(
				`DELETE FROM %s WHERE resume_id IN (SELECT id FROM resumes WHERE user_id = $1)`, table)
			args = append(args, *userID)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	var result pgconn.CommandTag
	if userID != nil {
		result, err = tx.Exec(ctx, `DELETE FROM resumes WHERE user_id = $1`, *userID)
	} else {
		result, err = tx.Exec(ctx, `DELETE FROM resumes`)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete resumes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return int(result.RowsAffected()), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
