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

package export

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/spezifisch/coastline-tools/pkg/overpass"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		segments []overpass.Segment
		want     string
	}{
		{
			name:     "empty result",
			segments: []overpass.Segment{},
			want:     "[]\n",
		},
		{
			name:     "empty segment",
			segments: []overpass.Segment{{}},
			want:     "[\n  []\n]\n",
		},
		{
			name: "one segment with two waypoints",
			segments: []overpass.Segment{
				{{Lat: 35.5, Lon: 139.5}, {Lat: 35.6, Lon: 139.6}},
			},
			want: `[
  [
    {
      "lat": 35.5,
      "lon": 139.5
    },
    {
      "lat": 35.6,
      "lon": 139.6
    }
  ]
]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteJSON(&buf, tt.segments); err != nil {
				t.Fatalf("WriteJSON() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

// round-trip: the serialized form must decode back to the same values
func TestWriteJSONRoundTrip(t *testing.T) {
	segments := []overpass.Segment{
		{{Lat: 35.0, Lon: 139.0}, {Lat: 35.1, Lon: 139.1}},
		{},
		{{Lat: -33.8568, Lon: 151.2153}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, segments); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got []overpass.Segment
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := []overpass.Segment{
		{{Lat: 35.0, Lon: 139.0}, {Lat: 35.1, Lon: 139.1}},
		{},
		{{Lat: -33.8568, Lon: 151.2153}},
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if len(want[i]) == 0 {
			if len(got[i]) != 0 {
				t.Errorf("segment %d = %v, want empty", i, got[i])
			}
			continue
		}
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriteKML(t *testing.T) {
	segments := []overpass.Segment{
		{{Lat: 35.0, Lon: 139.0}, {Lat: 35.1, Lon: 139.1}},
		{},
		{{Lat: 34.5, Lon: 138.5}, {Lat: 34.6, Lon: 138.6}},
	}

	var buf bytes.Buffer
	if err := WriteKML(&buf, segments); err != nil {
		t.Fatalf("WriteKML() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<kml") {
		t.Errorf("WriteKML() output has no kml root element: %q", out)
	}
	// empty segments are skipped, so only two linestrings remain
	if got := strings.Count(out, "<LineString>"); got != 2 {
		t.Errorf("WriteKML() wrote %d LineString elements, want 2", got)
	}
	if got := strings.Count(out, "<Placemark>"); got != 2 {
		t.Errorf("WriteKML() wrote %d Placemark elements, want 2", got)
	}
}

func TestWritePolyline(t *testing.T) {
	tests := []struct {
		name     string
		segments []overpass.Segment
		want     string
	}{
		{
			name:     "empty result",
			segments: []overpass.Segment{},
			want:     "",
		},
		{
			// reference values from the polyline format documentation
			name: "known encoding",
			segments: []overpass.Segment{
				{{Lat: 38.5, Lon: -120.2}, {Lat: 40.7, Lon: -120.95}, {Lat: 43.252, Lon: -126.453}},
			},
			want: "_p~iF~ps|U_ulLnnqC_mqNvxq`@\n",
		},
		{
			name: "one line per segment",
			segments: []overpass.Segment{
				{{Lat: 38.5, Lon: -120.2}},
				{{Lat: 38.5, Lon: -120.2}},
			},
			want: "_p~iF~ps|U\n_p~iF~ps|U\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePolyline(&buf, tt.segments); err != nil {
				t.Fatalf("WritePolyline() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WritePolyline() = %q, want %q", got, tt.want)
			}
		})
	}
}
