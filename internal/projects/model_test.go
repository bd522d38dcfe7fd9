package projects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() Input {
	return Input{
		Title:       "A",
		Description: "BBBBBBBBBBB",
		Tags:        []string{"x"},
		Category:    "web",
	}
}

func TestInputValidate_OK(t *testing.T) {
	in := validInput()
	assert.Empty(t, in.Validate())
}

func TestInputValidate_EmptyTags(t *testing.T) {
	in := validInput()
	in.Tags = nil

	errs := in.Validate()
	assert.Equal(t, "At least one tag is required", errs["tags"])
}

func TestInputValidate_TitleLimits(t *testing.T) {
	in := validInput()
	in.Title = "  "
	assert.Contains(t, in.Validate(), "title")

	in.Title = strings.Repeat("a", 101)
	assert.Contains(t, in.Validate(), "title")

	in.Title = strings.Repeat("a", 100)
	assert.NotContains(t, in.Validate(), "title")
}

func TestInputValidate_DescriptionLimit(t *testing.T) {
	in := validInput()
	in.Description = strings.Repeat("d", 2001)
	assert.Contains(t, in.Validate(), "description")
}

func TestInputValidate_URLs(t *testing.T) {
	in := validInput()
	in.GitHub = "not-a-url"
	assert.Equal(t, "Please enter a valid URL", in.Validate()["github"])

	in.GitHub = "https://github.com/user/repo"
	in.Live = "ftp://example.com"
	errs := in.Validate()
	assert.NotContains(t, errs, "github")
	assert.Contains(t, errs, "live")
}

func TestInputValidate_Category(t *testing.T) {
	in := validInput()
	in.Category = "blockchain"
	assert.Contains(t, in.Validate(), "category")

	for _, c := range Categories {
		in.Category = c
		assert.NotContains(t, in.Validate(), "category")
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Go", "React"}, SplitTags("Go, React"))
	assert.Equal(t, []string{"x"}, SplitTags(",x,,"))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , "))
}
