// Package wmts is a minimal client for the Copernicus Marine WMTS endpoint.
//
// It speaks exactly two operations: GetTile, which fetches one 256x256 PNG
// map tile, and GetLegend, which fetches the SVG legend description for a
// layer/style pair. Requests are sequential and carry a fixed timeout; there
// is deliberately no retry or response caching here.
package wmts

import (
	"context"
	stderrors "errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/disintegration/imaging"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors"
)

const (
	// DefaultBaseURL is the Copernicus Marine WMTS endpoint.
	DefaultBaseURL = "https://wmts.marine.copernicus.eu/teroWmts"

	// DefaultTimeout bounds a single tile or legend request.
	DefaultTimeout = 30 * time.Second

	// TileMatrixSet is the fixed tiling scheme. The tool supports no other
	// projection.
	TileMatrixSet = "EPSG:4326"

	// TileSize is the pixel edge length of every tile served by the scheme.
	TileSize = 256
)

// Coordinate addresses one tile in the fixed tiling scheme.
type Coordinate struct {
	Zoom int
	Row  int
	Col  int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]@z%d", c.Row, c.Col, c.Zoom)
}

// TileRequest holds everything needed to fetch one tile.
type TileRequest struct {
	Layer     string     // WMTS LAYER parameter
	Style     string     // WMTS STYLE parameter
	Coord     Coordinate // tile address
	Time      string     // 6h-aligned UTC timestamp, e.g. "2026-01-15T06:00:00.000Z"
	Elevation string     // optional depth selector; empty means omit
}

// Client issues WMTS requests. The zero value is not usable; construct with
// NewClient.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the WMTS endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient creates a WMTS client with the default endpoint and timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTile retrieves and decodes one map tile.
//
// Every failure mode (transport error, timeout, non-200 status, undecodable
// payload) is returned as a structured error so the caller can record the
// cell as absent and continue. FetchTile never blocks past the client
// timeout.
func (c *Client) FetchTile(ctx context.Context, req TileRequest) (image.Image, error) {
	q := url.Values{}
	q.Set("SERVICE", "WMTS")
	q.Set("REQUEST", "GetTile")
	q.Set("LAYER", req.Layer)
	q.Set("STYLE", req.Style)
	q.Set("TILEMATRIXSET", TileMatrixSet)
	q.Set("TILEMATRIX", fmt.Sprintf("%d", req.Coord.Zoom))
	q.Set("TILEROW", fmt.Sprintf("%d", req.Coord.Row))
	q.Set("TILECOL", fmt.Sprintf("%d", req.Coord.Col))
	q.Set("FORMAT", "image/png")
	q.Set("TIME", req.Time)
	if req.Elevation != "" {
		q.Set("ELEVATION", req.Elevation)
	}

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	img, err := imaging.Decode(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding tile %s", req.Coord)
	}
	return img, nil
}

// FetchLegend retrieves the raw SVG legend description for a layer/style.
// The MIME format parameter "image/svg+xml" is percent-encoded on the wire
// (the endpoint rejects a literal '+').
func (c *Client) FetchLegend(ctx context.Context, layer, style string) ([]byte, error) {
	q := url.Values{}
	q.Set("SERVICE", "WMTS")
	q.Set("REQUEST", "GetLegend")
	q.Set("LAYER", layer)
	q.Set("STYLE", style)
	q.Set("FORMAT", "image/svg+xml")

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "reading legend response")
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, q url.Values) (io.ReadCloser, error) {
	// url.Values.Encode percent-encodes every parameter (layer paths,
	// styles, the svg MIME type) and emits a deterministic key order.
	reqURL := c.baseURL + "?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "building request")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		var ue *url.Error
		if stderrors.As(err, &ue) && ue.Timeout() {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "request timed out")
		}
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "request cancelled")
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "request failed")
	}

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found")
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}
