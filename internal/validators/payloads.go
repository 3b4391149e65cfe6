// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kuklin

// Package validators enforces payload shape rules before any handler logic
// runs. Validation is deliberately shallow: required-field presence plus a
// minimal email sanity check, matching the contract of the HTTP surface.
package validators

import (
	"strings"

	"github.com/antonkuklin/saas-backend/models"
)

// ValidateSignup checks the signup payload for required fields.
func ValidateSignup(p models.SignupPayload) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if err := validateEmail(p.Email); err != nil {
		return err
	}
	if p.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidateLogin checks the login payload for required fields.
func ValidateLogin(p models.LoginPayload) error {
	if err := validateEmail(p.Email); err != nil {
		return err
	}
	if p.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidateBlogCreate checks the blog creation payload for required fields.
// Excerpt and tags are optional; published defaults elsewhere.
func ValidateBlogCreate(p models.BlogCreatePayload) error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Slug) == "" {
		return ErrEmptySlug
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	if strings.TrimSpace(p.Author) == "" {
		return ErrEmptyAuthor
	}

	return nil
}

// ValidateContact checks the contact payload for required fields.
func ValidateContact(p models.ContactPayload) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if err := validateEmail(p.Email); err != nil {
		return err
	}
	if strings.TrimSpace(p.Message) == "" {
		return ErrEmptyMessage
	}

	return nil
}

// validateEmail performs a minimal shape check. Full RFC 5322 parsing is out
// of scope; a local part, an @, and a dotted domain is all the contract asks.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	if !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}
