package embed

// Descriptor is a video-embed host offered to clients. Sandboxed tells the
// frontend whether the provider's player behaves inside a sandboxed iframe.
type Descriptor struct {
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	Sandboxed bool   `json:"sandboxed"`
}

// Fixed provider catalog, ordered by preference.
var providers = []Descriptor{
	{Name: "VidSrc", Domain: "vidsrc.cc", Sandboxed: true},
	{Name: "VidRock", Domain: "vidrock.net", Sandboxed: true},
	{Name: "VidSrc.me", Domain: "vidsrc.me", Sandboxed: false},
	{Name: "VidFast", Domain: "vidfast.pro", Sandboxed: true},
}

// Providers returns the fixed provider catalog.
func Providers() []Descriptor {
	return providers
}

var defaultBaseURLs = map[string]string{
	"vidsrc.cc":   "https://vidsrc.cc/v2/embed/",
	"vidrock.net": "https://vidrock.net/",
	"vidsrc.me":   "https://vidsrc.me/embed/",
	"vidfast.pro": "https://vidfast.pro/",
}

// Resolver builds embed deep links from the per-provider base URLs.
type Resolver struct {
	baseURLs map[string]string
}

// NewResolver applies non-empty overrides on top of the hardcoded defaults.
// Overrides for domains outside the catalog are ignored.
func NewResolver(overrides map[string]string) *Resolver {
	base := make(map[string]string, len(defaultBaseURLs))
	for domain, u := range defaultBaseURLs {
		base[domain] = u
	}
	for domain, u := range overrides {
		if u == "" {
			continue
		}
		if _, ok := base[domain]; ok {
			base[domain] = u
		}
	}
	return &Resolver{baseURLs: base}
}

// GenerateURL returns the embed deep link for a provider domain, or "" when
// the provider is unknown. imdbID and mediaType are inserted as-is; season
// and episode suffixing is the provider's own business.
func (r *Resolver) GenerateURL(provider, imdbID, mediaType string) string {
	base, ok := r.baseURLs[provider]
	if !ok {
		return ""
	}
	u := base + mediaType + "/" + imdbID
	if provider == "vidfast.pro" {
		u += "?autoPlay=true"
	}
	return u
}
