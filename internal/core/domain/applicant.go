// Package domain defines the core domain models for proofgate.
package domain

import "os"

// Environment variables carrying applicant identity. Kept out of config
// files so the author's identity never lands in version control.
const (
	EnvApplicantName  = "APPLICANT_NAME"
	EnvApplicantEmail = "APPLICANT_EMAIL"
)

// Applicant identifies who is answering the challenge. Both fields
// accompany every submission.
type Applicant struct {
	Name  string `json:"applicant_name"`
	Email string `json:"email"`
}

// Validate checks that both identity fields are present.
func (a *Applicant) Validate() error {
	if a.Name == "" {
		return ErrApplicantNameMissing
	}
	if a.Email == "" {
		return ErrApplicantEmailMissing
	}
	return nil
}

// ApplicantFromEnv reads the applicant identity from the environment.
func ApplicantFromEnv() (*Applicant, error) {
	a := &Applicant{
		Name:  os.Getenv(EnvApplicantName),
		Email: os.Getenv(EnvApplicantEmail),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
