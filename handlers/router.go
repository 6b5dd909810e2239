package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/empuertos/movielist/config"
	"github.com/empuertos/movielist/services/embed"
)

// Router translates inbound query parameters into a single TMDB call or a
// synthesized embed URL. It holds no per-request state.
type Router struct {
	cfg    *config.Config
	embeds *embed.Resolver
	client *http.Client
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{
		cfg:    cfg,
		embeds: embed.NewResolver(cfg.EmbedOverrides),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Handle classifies the request by which query parameters are present,
// first match wins. Order matters: details > credits > popular > query >
// imdb_id > tmdb_id > embed > getProviders.
func (rt *Router) Handle(c *fiber.Ctx) error {
	if rt.cfg.TMDBAPIKey == "" {
		return c.Status(500).JSON(fiber.Map{"error": "Server configuration error: TMDB_API_KEY secret not set."})
	}

	mediaType := "movie"
	if c.Query("type") == "tv" {
		mediaType = "tv"
	}
	action := c.Query("action")

	switch {
	case c.Query("details") != "":
		return rt.relay(c, fmt.Sprintf("/%s/%s?api_key=%s&language=en-US",
			mediaType, c.Query("details"), rt.cfg.TMDBAPIKey))

	case c.Query("credits") != "":
		return rt.relay(c, fmt.Sprintf("/%s/%s/credits?api_key=%s&language=en-US",
			mediaType, c.Query("credits"), rt.cfg.TMDBAPIKey))

	case c.Query("popular") != "":
		// media_type overrides the type-param inference for this action only.
		popularType := c.Query("media_type")
		if popularType == "" {
			popularType = "movie"
		}
		page := c.Query("page")
		if page == "" {
			page = "1"
		}
		return rt.relay(c, fmt.Sprintf("/%s/popular?api_key=%s&language=en-US&page=%s",
			popularType, rt.cfg.TMDBAPIKey, page))

	case c.Query("query") != "":
		return rt.relay(c, fmt.Sprintf("/search/multi?api_key=%s&query=%s&language=en-US&page=1",
			rt.cfg.TMDBAPIKey, queryEscape(c.Query("query"))))

	case c.Query("imdb_id") != "" && action != "embed":
		return rt.relay(c, fmt.Sprintf("/find/%s?api_key=%s&external_source=imdb_id",
			c.Query("imdb_id"), rt.cfg.TMDBAPIKey))

	case c.Query("tmdb_id") != "":
		return rt.relay(c, fmt.Sprintf("/%s/%s/external_ids?api_key=%s",
			mediaType, c.Query("tmdb_id"), rt.cfg.TMDBAPIKey))

	case action == "embed" && c.Query("provider") != "" && c.Query("imdb_id") != "":
		embedURL := rt.embeds.GenerateURL(c.Query("provider"), c.Query("imdb_id"), mediaType)
		if embedURL == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid provider or unable to generate embed URL."})
		}
		return c.JSON(fiber.Map{"embedUrl": embedURL})

	case action == "getProviders" || action == "embed":
		// An embed request missing provider or imdb_id falls back to the
		// provider list so the client can recover.
		return c.JSON(fiber.Map{"providers": embed.Providers()})

	default:
		return c.Status(400).JSON(fiber.Map{"error": "Missing or invalid query parameters."})
	}
}

// relay performs the single outbound GET and passes the JSON body through
// verbatim. Any failure on the way collapses to one 502.
func (rt *Router) relay(c *fiber.Ctx, path string) error {
	resp, err := rt.client.Get(rt.cfg.TMDBBaseURL + path)
	if err != nil {
		return upstreamError(c)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(body) {
		return upstreamError(c)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(200).Send(body)
}

func upstreamError(c *fiber.Ctx) error {
	return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch data from TMDB API."})
}

// queryEscape percent-encodes a query value, using %20 for spaces to match
// what TMDB's own examples show.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Health reports liveness for container probes.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
