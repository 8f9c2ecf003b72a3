package formslot

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre, Build          string
}

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// ParseVersion parses v. A leading `v` is accepted.
func ParseVersion(v string) (SemVer, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "v")
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, goerr.New("invalid semantic version", goerr.V("version", v))
	}
	var out SemVer
	for i, dst := range []*int{&out.Major, &out.Minor, &out.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, goerr.Wrap(err, "version component out of range", goerr.V("version", v))
		}
		*dst = n
	}
	out.Pre, out.Build = m[4], m[5]
	return out, nil
}

func (v SemVer) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}
