/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/observerly/starcanvas/pkg/astrometry"
	"github.com/observerly/starcanvas/pkg/canvas"
	"github.com/observerly/starcanvas/pkg/catalog"
	"github.com/observerly/starcanvas/pkg/export"
	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/wcs"
)

/*****************************************************************************************************************/

var renderFlags struct {
	width      int
	height     int
	background int

	ra        float64
	dec       float64
	radius    float64
	limit     int
	threshold float64

	format string
	output string
}

/*****************************************************************************************************************/

var formatsByName = map[string]export.Format{
	"raw8":  export.RawGamma8Bpp,
	"raw10": export.RawLinear10BppLE,
	"raw12": export.RawLinear12BppLE,
	"png8":  export.PngGamma8Bpp,
	"png16": export.PngLinear16Bpp,
}

/*****************************************************************************************************************/

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render a star-field frame from a SIMBAD radial search and export it to a file.",
	RunE:  runRender,
}

/*****************************************************************************************************************/

func init() {
	f := renderCommand.Flags()
	f.IntVar(&renderFlags.width, "width", 512, "canvas width in pixels")
	f.IntVar(&renderFlags.height, "height", 512, "canvas height in pixels")
	f.IntVar(&renderFlags.background, "background", 0, "canvas background sample (0-65535)")

	f.Float64Var(&renderFlags.ra, "ra", 0, "field center right ascension, in degrees")
	f.Float64Var(&renderFlags.dec, "dec", 0, "field center declination, in degrees")
	f.Float64Var(&renderFlags.radius, "radius", 0.25, "catalog search radius, in degrees")
	f.IntVar(&renderFlags.limit, "limit", 100, "maximum number of catalog sources to return")
	f.Float64Var(&renderFlags.threshold, "threshold", 14, "limiting magnitude; fainter sources are skipped")

	f.StringVar(&renderFlags.format, "format", "png8", "export format: raw8, raw10, raw12, png8, png16")
	f.StringVar(&renderFlags.output, "output", "frame.out", "output file path")
}

/*****************************************************************************************************************/

func runRender(cmd *cobra.Command, args []string) error {
	format, ok := formatsByName[renderFlags.format]
	if !ok {
		return fmt.Errorf("unknown format %q", renderFlags.format)
	}

	c, err := canvas.New(renderFlags.width, renderFlags.height)
	if err != nil {
		return err
	}

	c.SetBackground(uint16(renderFlags.background))

	service := catalog.NewCatalogService(catalog.SIMBAD, catalog.Params{
		Limit:     renderFlags.limit,
		Threshold: renderFlags.threshold,
	})

	sources, err := service.PerformRadialSearch(astrometry.ICRSEquatorialCoordinate{
		RA:  renderFlags.ra,
		Dec: renderFlags.dec,
	}, renderFlags.radius)
	if err != nil {
		return fmt.Errorf("catalog search failed: %w", err)
	}

	world := wcs.WCS{
		CRPIX1: float64(renderFlags.width) / 2,
		CRPIX2: float64(renderFlags.height) / 2,
		CRVAL1: renderFlags.ra,
		CRVAL2: renderFlags.dec,
		CD1_1:  -renderFlags.radius / float64(renderFlags.width),
		CD2_2:  renderFlags.radius / float64(renderFlags.height),
	}

	if _, err := catalog.PopulateCanvas(world, sources, geometry.Identity(), renderFlags.threshold, c); err != nil {
		return fmt.Errorf("populating canvas failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "populated %d sources\n", c.SpotCount())

	if err := c.Draw(); err != nil {
		return err
	}

	out, err := c.Export(format)
	if err != nil {
		return err
	}

	return os.WriteFile(renderFlags.output, out, 0o644)
}

/*****************************************************************************************************************/
