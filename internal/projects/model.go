package projects

import (
	"net/url"
	"strings"
	"time"
)

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 2000
	MaxImageBytes     = 5 * 1024 * 1024
)

var Categories = []string{"web", "ai", "mobile", "desktop", "game", "embedded", "other"}

// Image is the inline representation a project travels with: raw bytes on
// the way in, base64 in the JSON body on the way out.
type Image struct {
	Data        string `json:"data"`
	ContentType string `json:"contentType"`
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Image       *Image    `json:"image,omitempty"`
	GitHub      string    `json:"github,omitempty"`
	Live        string    `json:"live,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Input carries the fields of a create/update request after multipart
// parsing. Image is nil when the request did not include a new file.
type Input struct {
	Title            string
	Description      string
	Tags             []string
	Category         string
	Featured         bool
	Image            []byte
	ImageContentType string
	GitHub           string
	Live             string
}

// Validate applies the field rules both ends of the wire agree on.
// Returns one message per failing field, empty map when the input is valid.
func (in *Input) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(in.Title) > MaxTitleLen {
		errs["title"] = "Title must be less than 100 characters"
	}

	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required"
	} else if len(in.Description) > MaxDescriptionLen {
		errs["description"] = "Description must be less than 2000 characters"
	}

	if len(in.Tags) == 0 {
		errs["tags"] = "At least one tag is required"
	}

	if !ValidCategory(in.Category) {
		errs["category"] = "Unknown category"
	}

	if in.GitHub != "" && !ValidURL(in.GitHub) {
		errs["github"] = "Please enter a valid URL"
	}

	if in.Live != "" && !ValidURL(in.Live) {
		errs["live"] = "Please enter a valid URL"
	}

	return errs
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidURL accepts absolute http(s) URLs only.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SplitTags parses the CSV tags field of the multipart payload.
func SplitTags(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
