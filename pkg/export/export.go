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

// Package export writes coastline segments in formats mapping
// applications can import.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twpayne/go-kml/v2"
	"github.com/twpayne/go-polyline"

	"github.com/spezifisch/coastline-tools/pkg/overpass"
)

// WriteJSON writes the segments as a pretty-printed JSON array of arrays
// of {lat, lon} objects. An empty result prints as [].
func WriteJSON(w io.Writer, segments []overpass.Segment) error {
	buf, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

// WriteKML writes one LineString placemark per non-empty segment.
func WriteKML(w io.Writer, segments []overpass.Segment) error {
	doc := kml.Document(kml.Name("coastline"))
	for i, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		coords := make([]kml.Coordinate, 0, len(seg))
		for _, wp := range seg {
			coords = append(coords, kml.Coordinate{Lon: wp.Lon, Lat: wp.Lat})
		}
		doc.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("segment %d", i)),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(coords...),
			),
		))
	}
	return kml.KML(doc).WriteIndent(w, "", "  ")
}

// WritePolyline writes one Google encoded polyline per segment, one per line.
func WritePolyline(w io.Writer, segments []overpass.Segment) error {
	for _, seg := range segments {
		coords := make([][]float64, 0, len(seg))
		for _, wp := range seg {
			coords = append(coords, []float64{wp.Lat, wp.Lon})
		}
		line := polyline.EncodeCoords(coords)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
