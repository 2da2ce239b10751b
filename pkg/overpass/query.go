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

import "fmt"

// Endpoint is the public Overpass interpreter URL
const Endpoint = "https://overpass-api.de/api/interpreter"

// BoundingBox is a rectangular region in degrees, ordered as Overpass
// expects it: (south, west, north, east).
type BoundingBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Check returns an error for inverted bounds
func (b BoundingBox) Check() error {
	if b.MinLat > b.MaxLat {
		return fmt.Errorf("inverted latitude bounds: %v > %v", b.MinLat, b.MaxLat)
	}
	if b.MinLon > b.MaxLon {
		return fmt.Errorf("inverted longitude bounds: %v > %v", b.MinLon, b.MaxLon)
	}
	return nil
}

// CoastlineQuery builds the Overpass QL query that selects all
// natural=coastline ways intersecting the box, with full vertex geometry
// and a 25 second server-side timeout hint.
func CoastlineQuery(box BoundingBox) (string, error) {
	if err := box.Check(); err != nil {
		return "", err
	}
	q := fmt.Sprintf(`[out:json][timeout:25];
(
  way["natural"="coastline"](%v, %v, %v, %v);
);
out geom;`, box.MinLat, box.MinLon, box.MaxLat, box.MaxLon)
	return q, nil
}
