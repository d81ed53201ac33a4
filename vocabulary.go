package passimages

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is the logical purpose of an image within a pass bundle.
type Role string

// Built-in roles.
const (
	RoleBackground Role = "background"
	RoleFooter     Role = "footer"
	RoleIcon       Role = "icon"
	RoleLogo       Role = "logo"
	RoleStrip      Role = "strip"
	RoleThumbnail  Role = "thumbnail"
)

// Density is a display-resolution multiplier tier such as "2x".
// The zero value means "not specified" and resolves to BaseDensity.
type Density string

// Built-in densities.
const (
	Density1x Density = "1x"
	Density2x Density = "2x"
	Density3x Density = "3x"
)

// BaseDensity is used when a caller omits the density.
const BaseDensity = Density1x

// Image files are recognized by this exact suffix.
const assetExtension = ".png"

// DefaultRoles returns the built-in role set in declaration order.
func DefaultRoles() []Role {
	return []Role{RoleBackground, RoleFooter, RoleIcon, RoleLogo, RoleStrip, RoleThumbnail}
}

// DefaultDensities returns the built-in density set in declaration order.
func DefaultDensities() []Density {
	return []Density{Density1x, Density2x, Density3x}
}

// Vocabulary is the closed set of roles and densities a Store accepts.
// It is fixed at construction; there is no way to add kinds afterwards.
type Vocabulary struct {
	roles     []Role
	densities []Density
	roleSet   map[Role]struct{}
	densSet   map[Density]struct{}
}

// NewVocabulary validates and freezes a role/density table.
// Roles must be non-empty, unique, and free of '@', '.', path separators
// and whitespace so that filenames parse unambiguously. Densities must be
// unique, of the form "<n>x" with n >= 1, and include BaseDensity.
// Returns ErrInvalidVocabulary otherwise.
func NewVocabulary(roles []Role, densities []Density) (*Vocabulary, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: no roles", ErrInvalidVocabulary)
	}
	if len(densities) == 0 {
		return nil, fmt.Errorf("%w: no densities", ErrInvalidVocabulary)
	}

	v := &Vocabulary{
		roles:     make([]Role, 0, len(roles)),
		densities: make([]Density, 0, len(densities)),
		roleSet:   make(map[Role]struct{}, len(roles)),
		densSet:   make(map[Density]struct{}, len(densities)),
	}

	for _, r := range roles {
		if err := validateRoleName(r); err != nil {
			return nil, err
		}
		if _, dup := v.roleSet[r]; dup {
			return nil, fmt.Errorf("%w: duplicate role %q", ErrInvalidVocabulary, r)
		}
		v.roleSet[r] = struct{}{}
		v.roles = append(v.roles, r)
	}

	for _, d := range densities {
		if _, err := densityFactor(d); err != nil {
			return nil, err
		}
		if _, dup := v.densSet[d]; dup {
			return nil, fmt.Errorf("%w: duplicate density %q", ErrInvalidVocabulary, d)
		}
		v.densSet[d] = struct{}{}
		v.densities = append(v.densities, d)
	}

	if _, ok := v.densSet[BaseDensity]; !ok {
		return nil, fmt.Errorf("%w: base density %q missing", ErrInvalidVocabulary, BaseDensity)
	}

	return v, nil
}

// DefaultVocabulary returns the built-in roles and densities.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(DefaultRoles(), DefaultDensities())
	if err != nil {
		panic("passimages: default vocabulary is invalid: " + err.Error())
	}
	return v
}

// Roles returns the configured roles in declaration order.
func (v *Vocabulary) Roles() []Role {
	return append([]Role(nil), v.roles...)
}

// Densities returns the configured densities in declaration order.
func (v *Vocabulary) Densities() []Density {
	return append([]Density(nil), v.densities...)
}

// Base returns the density used when a caller omits one.
func (v *Vocabulary) Base() Density {
	return BaseDensity
}

// HasRole reports whether r belongs to the vocabulary.
func (v *Vocabulary) HasRole(r Role) bool {
	_, ok := v.roleSet[r]
	return ok
}

// HasDensity reports whether d belongs to the vocabulary.
// The zero Density is not a member; callers normalize it first.
func (v *Vocabulary) HasDensity(d Density) bool {
	_, ok := v.densSet[d]
	return ok
}

// Suffix returns the filename marker for d: "" for the base density,
// "@2x" for "2x" and so on.
func (v *Vocabulary) Suffix(d Density) string {
	if d == "" || d == BaseDensity {
		return ""
	}
	return "@" + string(d)
}

// ParseAssetName infers role and density from a filename such as
// "icon.png" or "logo@2x.png". Names without the ".png" extension, or whose
// stem does not name a known role, report ok == false.
//
// Density suffixes are checked before the bare role so that "icon@2x" wins
// over a hypothetical role literally named "icon@2x" (which NewVocabulary
// rejects anyway).
func (v *Vocabulary) ParseAssetName(name string) (role Role, density Density, ok bool) {
	stem, found := strings.CutSuffix(name, assetExtension)
	if !found {
		return "", "", false
	}

	for _, d := range v.densities {
		suffix := v.Suffix(d)
		if suffix == "" {
			continue
		}
		if prefix, cut := strings.CutSuffix(stem, suffix); cut && v.HasRole(Role(prefix)) {
			return Role(prefix), d, true
		}
	}

	if v.HasRole(Role(stem)) {
		return Role(stem), BaseDensity, true
	}
	return "", "", false
}

// AssetName is the inverse of ParseAssetName.
func (v *Vocabulary) AssetName(r Role, d Density) string {
	return string(r) + v.Suffix(d) + assetExtension
}

// normalize resolves the zero Density to the base density.
func (v *Vocabulary) normalize(d Density) Density {
	if d == "" {
		return BaseDensity
	}
	return d
}

// validateRoleName rejects names that would make filenames ambiguous.
func validateRoleName(r Role) error {
	if r == "" {
		return fmt.Errorf("%w: empty role", ErrInvalidVocabulary)
	}
	if strings.ContainsAny(string(r), "@./\\ \t\r\n\x00") {
		return fmt.Errorf("%w: role %q contains reserved characters", ErrInvalidVocabulary, r)
	}
	return nil
}

// densityFactor parses "<n>x" and returns n.
func densityFactor(d Density) (int, error) {
	num, found := strings.CutSuffix(string(d), "x")
	if !found || num == "" {
		return 0, fmt.Errorf("%w: density %q must look like \"2x\"", ErrInvalidVocabulary, d)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || strings.HasPrefix(num, "+") || strings.HasPrefix(num, "0") {
		return 0, fmt.Errorf("%w: density %q must look like \"2x\"", ErrInvalidVocabulary, d)
	}
	return n, nil
}
