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

// Waypoint is one geographic coordinate pair
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Segment holds one way's waypoints in geometric order along the line
type Segment []Waypoint

// Waypoints copies the element's geometry into a Segment. A way without
// geometry yields an empty segment, matching Overpass's permissive output.
func (e *Element) Waypoints() Segment {
	seg := make(Segment, 0, len(e.Geometry))
	for _, p := range e.Geometry {
		seg = append(seg, Waypoint{Lat: p.Lat, Lon: p.Lon})
	}
	return seg
}

// Segments reshapes the response into one segment per way element,
// keeping the element order the server returned.
func (r *Response) Segments() []Segment {
	segments := make([]Segment, 0, len(r.Elements))
	for i := range r.Elements {
		segments = append(segments, r.Elements[i].Waypoints())
	}
	return segments
}
