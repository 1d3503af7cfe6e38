package domain

// Property identifies one of the values a backend can extract
type Property int

const (
	PropertyRevision Property = iota
	PropertyBranch
	PropertyDate
	PropertyURL
)

// String returns the property key as used in configuration
func (p Property) String() string {
	switch p {
	case PropertyRevision:
		return "revision"
	case PropertyBranch:
		return "branch"
	case PropertyDate:
		return "date"
	case PropertyURL:
		return "url"
	default:
		return "unknown"
	}
}

// Request names the output properties to populate. An empty name means the
// value is not requested and nothing is run to compute it.
type Request struct {
	Revision string
	Branch   string
	Date     string
	URL      string
}

// Name returns the output name requested for p, or "" when p is not requested
func (r Request) Name(p Property) string {
	switch p {
	case PropertyRevision:
		return r.Revision
	case PropertyBranch:
		return r.Branch
	case PropertyDate:
		return r.Date
	case PropertyURL:
		return r.URL
	default:
		return ""
	}
}

// Requested reports whether p has an output name
func (r Request) Requested(p Property) bool {
	return r.Name(p) != ""
}

// Empty reports whether no property is requested
func (r Request) Empty() bool {
	return r.Revision == "" && r.Branch == "" && r.Date == "" && r.URL == ""
}

// WithPrefix returns a copy of r with prefix prepended to every requested name
func (r Request) WithPrefix(prefix string) Request {
	if prefix == "" {
		return r
	}
	add := func(name string) string {
		if name == "" {
			return ""
		}
		return prefix + name
	}
	return Request{
		Revision: add(r.Revision),
		Branch:   add(r.Branch),
		Date:     add(r.Date),
		URL:      add(r.URL),
	}
}
