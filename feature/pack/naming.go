package pack

import (
	"fmt"
	"regexp"
	"strings"
)

var packNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidatePackName checks the remote's naming rules for set identifiers.
func ValidatePackName(name string) error {
	if !packNamePattern.MatchString(name) {
		return fmt.Errorf("invalid pack name %q: must be alphanumeric and underscore only", name)
	}
	return nil
}

// ValidateTitle checks the remote's length rule for set titles.
func ValidateTitle(title string) error {
	if len(title) < 1 || len(title) > 64 {
		return fmt.Errorf("invalid pack title %q: length must be between 1 and 64 characters", title)
	}
	return nil
}

// ComposeSetName derives the globally unique set name from a pack name and
// the operating bot's username. Names already carrying a _by_ suffix are
// taken as-is.
func ComposeSetName(packName, botUsername string) string {
	if strings.Contains(packName, "_by_") {
		return packName
	}
	return fmt.Sprintf("%s_by_%s", packName, botUsername)
}

// ParseSetLink extracts the set name from a t.me/addstickers/<name> link.
// A bare set name passes through unchanged.
func ParseSetLink(link string) string {
	link = strings.TrimSuffix(link, "/")
	if i := strings.LastIndex(link, "/"); i >= 0 {
		return link[i+1:]
	}
	return link
}
