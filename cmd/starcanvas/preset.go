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
	"github.com/observerly/starcanvas/pkg/geometry"
	"github.com/observerly/starcanvas/pkg/preset"
	"github.com/observerly/starcanvas/pkg/wcs"
)

/*****************************************************************************************************************/

var presetFlags struct {
	database string
}

/*****************************************************************************************************************/

var presetCommand = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved scene presets.",
}

/*****************************************************************************************************************/

var presetListCommand = &cobra.Command{
	Use:   "list",
	Short: "List the names of every saved preset.",
	RunE:  runPresetList,
}

/*****************************************************************************************************************/

var presetSaveCommand = &cobra.Command{
	Use:   "save <name>",
	Short: "Build a scene from a SIMBAD radial search and save it as a named preset.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

/*****************************************************************************************************************/

var presetLoadCommand = &cobra.Command{
	Use:   "load <name>",
	Short: "Load a named preset, draw it, and export it to a file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetLoad,
}

/*****************************************************************************************************************/

func init() {
	presetCommand.PersistentFlags().StringVar(&presetFlags.database, "database", "presets.db", "path to the preset SQLite database")
	presetCommand.AddCommand(presetListCommand)
	presetCommand.AddCommand(presetSaveCommand)
	presetCommand.AddCommand(presetLoadCommand)
}

/*****************************************************************************************************************/

func runPresetSave(cmd *cobra.Command, args []string) error {
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

	store, err := preset.Open(presetFlags.database)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := c.Dimensions()

	return store.Save(args[0], preset.Scene{
		Width:      width,
		Height:     height,
		Background: c.Background(),
		View:       c.ViewTransform(),
		Spots:      c.SpotRecords(),
	})
}

/*****************************************************************************************************************/

func runPresetLoad(cmd *cobra.Command, args []string) error {
	store, err := preset.Open(presetFlags.database)
	if err != nil {
		return err
	}
	defer store.Close()

	scene, err := store.Load(args[0])
	if err != nil {
		return err
	}

	c, err := canvas.New(scene.Width, scene.Height)
	if err != nil {
		return err
	}

	c.SetBackground(scene.Background)
	c.SetViewTransform(scene.View)

	for _, rec := range scene.Spots {
		h := c.AddSpot(rec.X, rec.Y, rec.Shape, rec.Peak)
		_ = c.SetSpotOffset(h, rec.OffsetX, rec.OffsetY)
		_ = c.SetSpotIllumination(h, rec.Illumination)
	}

	if err := c.Draw(); err != nil {
		return err
	}

	format, ok := formatsByName[renderFlags.format]
	if !ok {
		return fmt.Errorf("unknown format %q", renderFlags.format)
	}

	out, err := c.Export(format)
	if err != nil {
		return err
	}

	return os.WriteFile(renderFlags.output, out, 0o644)
}

/*****************************************************************************************************************/

func runPresetList(cmd *cobra.Command, args []string) error {
	store, err := preset.Open(presetFlags.database)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.List()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	return nil
}

/*****************************************************************************************************************/
