package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Francobelbruno/Portafolio/internal/models"
)

type categoryRule struct {
	category models.Category
	matches  func(content string) bool
}

func containsAny(words ...string) func(string) bool {
	return func(content string) bool {
		for _, w := range words {
			if strings.Contains(content, w) {
				return true
			}
		}
		return false
	}
}

// categoryRules are evaluated in order; the first match wins.
// "javascript" is caught by the java rule, as it always has been.
var categoryRules = []categoryRule{
	{models.CategoryReact, containsAny("react", "frontend")},
	{models.CategoryJava, containsAny("java", "spring")},
	{models.CategoryPython, containsAny("python")},
	{models.CategoryFullstack, func(content string) bool {
		return containsAny("fullstack", "full-stack")(content) ||
			(strings.Contains(content, "backend") && strings.Contains(content, "frontend"))
	}},
}

// Classify assigns a project to a gallery category using keyword heuristics
// over its language, topics, name and description.
func Classify(p models.Project) models.Category {
	language := ""
	if p.Language != nil {
		language = *p.Language
	}
	content := strings.ToLower(strings.Join([]string{
		language,
		strings.Join(p.Topics, " "),
		p.Name,
		p.Description,
	}, " "))

	for _, rule := range categoryRules {
		if rule.matches(content) {
			return rule.category
		}
	}
	return models.CategoryOther
}

// InferDemoURL returns the project homepage, or a best-effort GitHub Pages
// address for the repository. The guess is not checked for existence.
func InferDemoURL(account string, p models.Project) string {
	if p.Homepage != nil && strings.TrimSpace(*p.Homepage) != "" {
		return *p.Homepage
	}
	if p.Name == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.github.io/%s/", account, encodeComponent(p.Name))
}

// FormatDisplayName turns a repository name into a title by upper-casing the
// first letter of every whitespace-delimited word,
// e.g. "my-cool_project" becomes "My Cool Project".
func FormatDisplayName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	var b strings.Builder
	b.Grow(len(name))
	atWordStart := true
	for _, r := range name {
		if atWordStart {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		atWordStart = unicode.IsSpace(r)
	}
	return b.String()
}
