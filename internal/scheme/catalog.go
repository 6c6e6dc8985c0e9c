package scheme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"tonearm/internal/apperr"
)

// Catalog resolves scheme names against the built-ins plus any custom schemes.
type Catalog struct {
	schemes []Scheme
	exact   map[string]int
	folded  map[string]int // ignores accents, case and spacing; rejects look-alike custom names
}

// NewCatalog builds a catalog from the built-in table followed by custom.
// Custom schemes need 0 < inner < outer and a name that differs from every
// other name by more than accents, case or spacing.
func NewCatalog(custom ...Scheme) (*Catalog, error) {
	c := &Catalog{
		schemes: make([]Scheme, 0, len(builtin)+len(custom)),
		exact:   make(map[string]int, len(builtin)+len(custom)),
		folded:  make(map[string]int, len(builtin)+len(custom)),
	}
	for _, s := range builtin {
		c.add(s)
	}
	for _, s := range custom {
		s.Name = strings.TrimSpace(s.Name)
		if err := validateCustom(s); err != nil {
			return nil, err
		}
		if _, ok := c.folded[foldName(s.Name)]; ok {
			return nil, fmt.Errorf("scheme %q: name already defined", s.Name)
		}
		c.add(s)
	}
	return c, nil
}

func validateCustom(s Scheme) error {
	if s.Name == "" {
		return errors.New("scheme name must be set")
	}
	if !(s.InnerNull > 0) || !(s.OuterNull > 0) {
		return fmt.Errorf("scheme %q: null points must be positive", s.Name)
	}
	if s.InnerNull >= s.OuterNull {
		return fmt.Errorf("scheme %q: inner null must be smaller than outer null", s.Name)
	}
	return nil
}

func (c *Catalog) add(s Scheme) {
	idx := len(c.schemes)
	c.schemes = append(c.schemes, s)
	c.exact[s.Name] = idx
	c.folded[foldName(s.Name)] = idx
}

// Lookup returns the scheme whose name is exactly name.
func (c *Catalog) Lookup(name string) (Scheme, error) {
	if idx, ok := c.exact[name]; ok {
		return c.schemes[idx], nil
	}
	return Scheme{}, apperr.New(apperr.ErrUnknownScheme,
		"unknown scheme %q (choose from: %s)", name, strings.Join(c.Names(), ", "))
}

// All returns every scheme, built-ins first, in definition order.
func (c *Catalog) All() []Scheme {
	out := make([]Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Names returns the scheme names sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.schemes))
	for _, s := range c.schemes {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

func foldName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}
