// Package version derives the release version from a pushed tag.
package version

import (
	"errors"
	"fmt"
	"regexp"
)

// GroupName is the named capture group that, when present in the pattern and
// part of the match, selects the version instead of the whole match.
const GroupName = "version"

// ErrNoMatch is returned when the pattern does not match the tag.
var ErrNoMatch = errors.New("version regexp did not match")

// Extract applies re to tag and returns the version. The whole leftmost match
// is the version unless the pattern declares a "version" group. The result is
// used verbatim; it is not validated as a semantic version.
func Extract(tag string, re *regexp.Regexp) (string, error) {
	loc := re.FindStringSubmatchIndex(tag)
	if loc == nil {
		return "", fmt.Errorf("%w: regexp %q could not be matched to tag %q", ErrNoMatch, re.String(), tag)
	}

	if i := re.SubexpIndex(GroupName); i > 0 && loc[2*i] >= 0 {
		return tag[loc[2*i]:loc[2*i+1]], nil
	}
	return tag[loc[0]:loc[1]], nil
}
