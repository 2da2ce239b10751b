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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spezifisch/coastline-tools/pkg/export"
	"github.com/spezifisch/coastline-tools/pkg/overpass"
)

var rootCmd = &cobra.Command{
	Use:   "getwaypoints",
	Short: "Fetch coastline waypoints for import in mapping applications",
	Long:  `Query OpenStreetMap coastline ways inside a bounding box via Overpass and write their waypoints as JSON, KML or encoded polylines.`,
	Run: func(cmd *cobra.Command, args []string) {
		tStart := time.Now()

		south, _ := cmd.Flags().GetFloat64("south")
		west, _ := cmd.Flags().GetFloat64("west")
		north, _ := cmd.Flags().GetFloat64("north")
		east, _ := cmd.Flags().GetFloat64("east")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		api, _ := cmd.Flags().GetString("api")

		box := overpass.BoundingBox{
			MinLat: south,
			MinLon: west,
			MaxLat: north,
			MaxLon: east,
		}

		client := overpass.NewClient(api)
		segments, err := client.FetchCoastline(context.Background(), box)
		if err != nil {
			log.WithError(err).Fatal("coastline fetch failed!")
		}
		timeTrack(tStart, "overpass fetch")

		points := 0
		for _, seg := range segments {
			points += len(seg)
		}
		log.Infof("got %d coastline segments containing %d waypoints", len(segments), points)

		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				log.WithError(err).Fatal("can't create output file")
			}
			defer f.Close()
			out = f
		}

		switch format {
		case "json":
			err = export.WriteJSON(out, segments)
		case "kml":
			err = export.WriteKML(out, segments)
		case "polyline":
			err = export.WritePolyline(out, segments)
		default:
			err = fmt.Errorf("unknown output format '%s'", format)
		}
		if err != nil {
			log.WithError(err).Fatal("writing output failed!")
		}
	},
}

// from: https://coderwall.com/p/cp5fya/measuring-execution-time-in-go
func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Printf("> %s took %s", name, elapsed)
}

func main() {
	rootCmd.PersistentFlags().Float64P("south", "s", 0, "bounding box south edge (min latitude)")
	rootCmd.PersistentFlags().Float64P("west", "w", 0, "bounding box west edge (min longitude)")
	rootCmd.PersistentFlags().Float64P("north", "n", 0, "bounding box north edge (max latitude)")
	rootCmd.PersistentFlags().Float64P("east", "e", 0, "bounding box east edge (max longitude)")
	rootCmd.PersistentFlags().StringP("format", "f", "json", "output format: json, kml, polyline")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().String("api", overpass.Endpoint, "Overpass API endpoint")

	rootCmd.MarkPersistentFlagRequired("south")
	rootCmd.MarkPersistentFlagRequired("west")
	rootCmd.MarkPersistentFlagRequired("north")
	rootCmd.MarkPersistentFlagRequired("east")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
