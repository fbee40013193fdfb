package classify

import (
	"sort"
	"strings"
	"time"

	"github.com/askeland/standup/internal/config"
	"github.com/askeland/standup/internal/entry"
	"github.com/askeland/standup/internal/timeutil"
)

// Kind is the mutually-exclusive report category an entry is assigned to.
type Kind int

const (
	ClientProject Kind = iota
	GeneralDepartment
	Internal
	Other
)

// String returns the display label for a kind.
func (k Kind) String() string {
	switch k {
	case ClientProject:
		return "Client Project"
	case GeneralDepartment:
		return "General Department"
	case Internal:
		return "Internal"
	default:
		return "Other"
	}
}

// Bucket is one rendered group of entries. Client and Other buckets are
// named per project; General Department and Internal are single buckets.
type Bucket struct {
	Kind    Kind
	Name    string
	Entries []entry.Entry
}

// TotalMinutes sums the durations of the bucket's entries.
func (b Bucket) TotalMinutes() int {
	total := 0
	for _, e := range b.Entries {
		total += e.Minutes
	}
	return total
}

// Params select which entries a classification run covers.
type Params struct {
	UserID          int64
	From, To        time.Time
	ExcludeInternal bool
}

// Classify assigns every entry for the given user within [From, To] to
// exactly one bucket and returns the buckets in report order: client
// buckets alphabetical by display name, then General Department, Internal
// (omitted entirely when ExcludeInternal is set), then Other buckets
// alphabetical by raw project name. Entries keep their input order within
// a bucket.
//
// Rules are evaluated in fixed priority order, first match wins:
// internal markers are checked before the client-project marker, so a
// client-project entry tagged internal counts as internal.
func Classify(entries []entry.Entry, p Params, cfg config.Classification) []Bucket {
	clients := make(map[string]*Bucket)
	others := make(map[string]*Bucket)
	general := &Bucket{Kind: GeneralDepartment, Name: GeneralDepartment.String()}
	internal := &Bucket{Kind: Internal, Name: Internal.String()}

	for _, e := range entries {
		if e.User.ID != p.UserID {
			continue
		}
		if !timeutil.IsInRange(e.Date, p.From, p.To) {
			continue
		}

		switch {
		case isInternal(e, cfg):
			if p.ExcludeInternal {
				continue
			}
			internal.Entries = append(internal.Entries, e)

		case strings.Contains(e.Project.Name, cfg.ClientMarker):
			name := displayName(e.Project.Name, cfg)
			b, ok := clients[name]
			if !ok {
				b = &Bucket{Kind: ClientProject, Name: name}
				clients[name] = b
			}
			b.Entries = append(b.Entries, e)

		case isDepartment(e, cfg):
			general.Entries = append(general.Entries, e)

		default:
			name := e.Project.Name
			if name == "" {
				name = "(no project)"
			}
			b, ok := others[name]
			if !ok {
				b = &Bucket{Kind: Other, Name: name}
				others[name] = b
			}
			b.Entries = append(b.Entries, e)
		}
	}

	buckets := make([]Bucket, 0, len(clients)+len(others)+2)
	for _, name := range sortedKeys(clients) {
		buckets = append(buckets, *clients[name])
	}
	if len(general.Entries) > 0 {
		buckets = append(buckets, *general)
	}
	if !p.ExcludeInternal && len(internal.Entries) > 0 {
		buckets = append(buckets, *internal)
	}
	for _, name := range sortedKeys(others) {
		buckets = append(buckets, *others[name])
	}

	return buckets
}

// isInternal reports whether the entry is internal/company work: any tag
// name contains an internal marker, or the entry was logged against the
// internal project bucket.
func isInternal(e entry.Entry, cfg config.Classification) bool {
	if e.HasTagContaining(cfg.InternalTagMarkers) {
		return true
	}
	return cfg.InternalProjectID != 0 && e.Project.ID == cfg.InternalProjectID
}

// isDepartment reports whether the entry counts as general department work.
// Under the default "inclusive" policy, membership in a department bucket
// is enough. Under "strict", the entry must additionally carry a
// department tag; otherwise it falls through to Other.
func isDepartment(e entry.Entry, cfg config.Classification) bool {
	member := false
	for _, id := range cfg.DepartmentProjectIDs {
		if e.Project.ID == id {
			member = true
			break
		}
	}
	if !member {
		return false
	}
	if cfg.DepartmentPolicy == "strict" {
		return e.HasTagContaining(cfg.DepartmentTagMarkers)
	}
	return true
}

// displayName derives the client bucket name from a marked project name.
// The leading marker is stripped and the remainder is matched against the
// configured short-names by case-insensitive substring containment in
// either direction; with no match, the first whitespace-delimited token of
// the stripped name is used.
func displayName(projectName string, cfg config.Classification) string {
	stripped := strings.TrimSpace(strings.TrimPrefix(projectName, cfg.ClientMarker))
	if stripped == "" {
		return projectName
	}

	lower := strings.ToLower(stripped)
	for _, short := range cfg.ClientShortNames {
		shortLower := strings.ToLower(short)
		if strings.Contains(lower, shortLower) || strings.Contains(shortLower, lower) {
			return short
		}
	}

	return strings.Fields(stripped)[0]
}

func sortedKeys(m map[string]*Bucket) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
