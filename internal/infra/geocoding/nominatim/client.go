// Package nominatim implements the place provider against a Nominatim-compatible JSON API.
package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"placebook/config"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"
	"placebook/internal/errors"

	"github.com/paulmach/orb/geo"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
	outputFormat     = "jsonv2"
)

// ErrInvalidHandle is returned when a completion handle is not an OSM reference.
var ErrInvalidHandle = errors.New("invalid completion handle")

// Client talks to a Nominatim-compatible service.
type Client struct {
	baseURL    string
	userAgent  string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client from the geocoding configuration.
func NewClient(cfg *config.GeocodingConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("geocoding base URL is required")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid geocoding base URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		language:  cfg.Language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// NewPlaceProvider exposes the client as the domain place provider.
func NewPlaceProvider(cfg *config.Config, logger *slog.Logger) (service.PlaceProvider, error) {
	return NewClient(cfg.Geocoding, logger)
}

// place is one jsonv2 result object.
type place struct {
	PlaceID     int64   `json:"place_id"`
	OSMType     string  `json:"osm_type"`
	OSMID       int64   `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Address     address `json:"address"`
}

type address struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	Pedestrian  string `json:"pedestrian"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	Hamlet      string `json:"hamlet"`
	Suburb      string `json:"suburb"`
	State       string `json:"state"`
	Region      string `json:"region"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
}

// reverseResponse is a place, or an error object when nothing is found.
type reverseResponse struct {
	place
	Error string `json:"error"`
}

// ReverseGeocode calls /reverse. A "not found" answer yields zero placemarks.
func (c *Client) ReverseGeocode(ctx context.Context, coord entity.Coordinate) ([]service.Placemark, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))

	var resp reverseResponse
	if err := c.get(ctx, "/reverse", query, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" || resp.OSMType == "" {
		c.logger.Debug("Nominatim reverse returned no result",
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
			slog.String("reason", resp.Error),
		)

		return nil, nil
	}

	pm, err := resp.toPlacemark()
	if err != nil {
		return nil, err
	}

	return []service.Placemark{pm}, nil
}

// Search calls /search. A region only biases the ranking, results outside it are kept.
func (c *Client) Search(ctx context.Context, text string, region *service.Region, limit int) ([]service.Placemark, error) {
	query := url.Values{}
	query.Set("q", text)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if region != nil && region.RadiusMeters > 0 {
		query.Set("viewbox", viewbox(*region))
		query.Set("bounded", "0")
	}

	var places []place
	if err := c.get(ctx, "/search", query, &places); err != nil {
		return nil, err
	}

	return c.toPlacemarks(places), nil
}

// Complete runs a search and turns each hit into a completion whose handle
// is the OSM reference of the hit.
func (c *Client) Complete(ctx context.Context, fragment string, limit int) ([]service.Completion, error) {
	query := url.Values{}
	query.Set("q", fragment)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var places []place
	if err := c.get(ctx, "/search", query, &places); err != nil {
		return nil, err
	}

	completions := make([]service.Completion, 0, len(places))
	for _, p := range places {
		handle := p.osmRef()
		if handle == "" {
			continue
		}

		title, subtitle := splitDisplayName(p.Name, p.DisplayName)
		completions = append(completions, service.Completion{
			Title:    title,
			Subtitle: subtitle,
			Handle:   handle,
		})
	}

	return completions, nil
}

// ResolveCompletion looks the OSM reference up through /lookup.
func (c *Client) ResolveCompletion(ctx context.Context, handle string) (*service.Placemark, error) {
	if !isOSMRef(handle) {
		return nil, errors.Wrapf(ErrInvalidHandle, "handle %q", handle)
	}

	query := url.Values{}
	query.Set("osm_ids", handle)

	var places []place
	if err := c.get(ctx, "/lookup", query, &places); err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, nil
	}

	pm, err := places[0].toPlacemark()
	if err != nil {
		return nil, err
	}

	return &pm, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("format", outputFormat)
	query.Set("addressdetails", "1")

	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "nominatim %s request failed", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "read nominatim %s response", path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("nominatim %s returned status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode nominatim %s response", path)
	}

	return nil
}

// toPlacemarks drops results whose coordinates cannot be parsed.
func (c *Client) toPlacemarks(places []place) []service.Placemark {
	placemarks := make([]service.Placemark, 0, len(places))
	for _, p := range places {
		pm, err := p.toPlacemark()
		if err != nil {
			c.logger.Debug("Skipping Nominatim result with invalid coordinates",
				slog.Int64("place_id", p.PlaceID),
				slog.Any("error", err),
			)

			continue
		}
		placemarks = append(placemarks, pm)
	}

	return placemarks
}

func (p place) toPlacemark() (service.Placemark, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return service.Placemark{}, errors.Wrapf(err, "invalid latitude %q", p.Lat)
	}

	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return service.Placemark{}, errors.Wrapf(err, "invalid longitude %q", p.Lon)
	}

	// display_name starts with the house number for plain addresses, so it
	// never stands in for a missing name.
	return service.Placemark{
		ExternalID:         p.osmRef(),
		Name:               strings.TrimSpace(p.Name),
		Coordinate:         entity.Coordinate{Latitude: lat, Longitude: lon},
		SubThoroughfare:    p.Address.HouseNumber,
		Thoroughfare:       firstNonEmpty(p.Address.Road, p.Address.Pedestrian),
		Locality:           firstNonEmpty(p.Address.City, p.Address.Town, p.Address.Village, p.Address.Hamlet, p.Address.Suburb),
		AdministrativeArea: firstNonEmpty(p.Address.State, p.Address.Region),
		PostalCode:         p.Address.Postcode,
		Country:            p.Address.Country,
	}, nil
}

// osmRef returns the N/W/R-prefixed OSM reference accepted by /lookup.
func (p place) osmRef() string {
	if p.OSMID == 0 || p.OSMType == "" {
		return ""
	}

	prefix := strings.ToUpper(p.OSMType[:1])
	switch prefix {
	case "N", "W", "R":
		return prefix + strconv.FormatInt(p.OSMID, 10)
	default:
		return ""
	}
}

func isOSMRef(handle string) bool {
	if len(handle) < 2 {
		return false
	}

	switch handle[0] {
	case 'N', 'W', 'R':
	default:
		return false
	}

	_, err := strconv.ParseInt(handle[1:], 10, 64)

	return err == nil
}

// viewbox renders the region as "left,top,right,bottom".
func viewbox(region service.Region) string {
	bound := geo.NewBoundAroundPoint(region.Center.Point(), region.RadiusMeters)

	return strings.Join([]string{
		strconv.FormatFloat(bound.Left(), 'f', 7, 64),
		strconv.FormatFloat(bound.Top(), 'f', 7, 64),
		strconv.FormatFloat(bound.Right(), 'f', 7, 64),
		strconv.FormatFloat(bound.Bottom(), 'f', 7, 64),
	}, ",")
}

// splitDisplayName returns a title and the remaining address text.
func splitDisplayName(name, displayName string) (title, subtitle string) {
	displayName = strings.TrimSpace(displayName)
	name = strings.TrimSpace(name)

	if name == "" {
		head, rest, _ := strings.Cut(displayName, ",")

		return strings.TrimSpace(head), strings.TrimSpace(rest)
	}

	rest := strings.TrimPrefix(displayName, name)
	rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ","))

	return name, rest
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
