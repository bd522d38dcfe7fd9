package client

import (
	"context"
	"regexp"
	"strings"
)

// PublicProjects fetches the read-only project listing. The context is the
// cancellation point: a torn-down view cancels it and no state is updated
// from a dead fetch.
func (c *Client) PublicProjects(ctx context.Context) ([]Project, error) {
	var resp projectListResp
	if err := c.getJSON(ctx, "/api/projects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s+\-()]{10,20}$`)
)

// ContactForm is the public contact form. Phone is optional.
type ContactForm struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Validate applies the form rules; a non-empty result blocks submission.
func (f *ContactForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(f.Email) {
		errs["email"] = "Invalid email"
	}

	if f.Phone != "" && !phoneRe.MatchString(f.Phone) {
		errs["phone"] = "Invalid phone"
	}

	if len(strings.TrimSpace(f.Message)) < 10 {
		errs["message"] = "Message must be at least 10 characters"
	}

	return errs
}

// SubmitContact validates and posts the contact form. Field errors come
// back without any network call having been made.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (map[string]string, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	if err := c.postJSON(ctx, "/api/contact", form, nil); err != nil {
		return nil, err
	}
	return nil, nil
}
