package contacts

import (
	"regexp"
	"strings"
	"time"
)

const (
	StatusNew      = "new"
	StatusReviewed = "reviewed"
	StatusArchived = "archived"
)

var Statuses = []string{StatusNew, StatusReviewed, StatusArchived}

const MinMessageLen = 10

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s+\-()]{10,20}$`)
)

type Message struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Input struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Validate applies the contact form rules. Phone is optional; email and
// message are not.
func (in *Input) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(in.Email) {
		errs["email"] = "Invalid email"
	}

	if in.Phone != "" && !phoneRe.MatchString(in.Phone) {
		errs["phone"] = "Invalid phone"
	}

	if len(strings.TrimSpace(in.Message)) < MinMessageLen {
		errs["message"] = "Message must be at least 10 characters"
	}

	return errs
}

// ValidStatus reports whether s is one of the allowed statuses. Any status
// is reachable from any other; there is no transition order.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
