package chartab

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var digitRun = regexp.MustCompile(`\d+`)

var titleCaser = cases.Title(language.English)

// ParseName parses a case-insensitive point-group name into (family, n).
//
// A purely alphabetic name is a parametrized family tag and takes its
// order from the explicit order parameter ("dnh", 6). A name with an
// embedded digit run carries its own order, and the digits are replaced
// with the "n" placeholder to recover the family ("d6h" -> "dnh", 6);
// the order parameter is ignored on this path. The two paths are
// mutually exclusive: anything else fails with ErrCodeBadGroupName.
func ParseName(name string, order int) (string, int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", 0, &TableError{
			Code:    ErrCodeBadGroupName,
			Message: "point group name is empty",
		}
	}

	if isAlpha(name) {
		if order < 1 {
			return "", 0, &TableError{
				Code:    ErrCodeBadGroupName,
				Message: fmt.Sprintf("family %q requires an explicit order >= 1, got %d", name, order),
				Group:   name,
			}
		}
		return name, order, nil
	}

	runs := digitRun.FindAllString(name, -1)
	if len(runs) != 1 {
		return "", 0, &TableError{
			Code:    ErrCodeBadGroupName,
			Message: fmt.Sprintf("name %q must contain exactly one digit run", name),
			Group:   name,
		}
	}
	n, err := strconv.Atoi(runs[0])
	if err != nil || n < 1 {
		return "", 0, &TableError{
			Code:    ErrCodeBadGroupName,
			Message: fmt.Sprintf("order in %q must be a positive integer", name),
			Group:   name,
		}
	}

	family := digitRun.ReplaceAllString(name, "n")
	if !isAlpha(family) {
		return "", 0, &TableError{
			Code:    ErrCodeBadGroupName,
			Message: fmt.Sprintf("name %q contains characters other than letters and digits", name),
			Group:   name,
		}
	}
	return family, n, nil
}

// DisplayName reconstructs the conventional title-cased name of a point
// group from its family tag and order ("dnh", 6 -> "D6h").
func DisplayName(family string, n int) string {
	titled := titleCaser.String(family)
	return strings.Replace(titled, "n", strconv.Itoa(n), 1)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
