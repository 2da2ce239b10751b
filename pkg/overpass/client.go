// This file is part of coastline-tools (https://github.com/spezifisch/coastline-tools).
// Copyright (C) 2021-2022 spezifisch <spezifisch-7e6@below.fr> (https://github.com/spezifisch).
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, version 3 of the License.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package overpass

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// HTTPDoer is the part of http.Client we use. Tests plug in a fake transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries one Overpass endpoint. The zero value is not usable,
// construct it with NewClient.
type Client struct {
	Endpoint string
	HTTP     HTTPDoer
}

// NewClient returns a client for the given endpoint URL,
// or for the public interpreter if endpoint is empty.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = Endpoint
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// NetworkError reports a failed transport or a non-2xx response status.
type NetworkError struct {
	Status string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return "overpass: request failed: " + e.Err.Error()
	}
	return "overpass: bad response status: " + e.Status
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "overpass: response decode failed: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FetchCoastline performs one synchronous GET for all coastline ways inside
// the box and returns their waypoints, one segment per way. There is no
// retry; a missing "elements" field counts as an empty result.
func (c *Client) FetchCoastline(ctx context.Context, box BoundingBox) ([]Segment, error) {
	query, err := CoastlineQuery(box)
	if err != nil {
		return nil, err
	}

	reqURL := c.Endpoint + "?data=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	log.WithField("endpoint", c.Endpoint).Info("querying overpass")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Status: resp.Status}
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.WithError(err).Error("overpass response decode failed")
		return nil, &DecodeError{Err: err}
	}

	log.WithField("ways", len(parsed.Elements)).Info("overpass response decoded")
	return parsed.Segments(), nil
}
