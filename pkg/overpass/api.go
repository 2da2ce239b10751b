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

// Response is the top-level object the Overpass interpreter returns in
// [out:json] mode. Fields we don't use (generator, osm3s) are ignored.
type Response struct {
	Elements []Element `json:"elements"`
}

// Element is one OSM object from the response. With our query this always
// is a way carrying inline geometry from "out geom".
type Element struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Tags     map[string]string `json:"tags,omitempty"`
	Geometry []Point           `json:"geometry"`
}

// Point is one vertex of a way's geometry
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
