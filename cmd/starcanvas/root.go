/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "starcanvas",
	Short: "starcanvas renders sub-pixel-accurate Gaussian light spots onto a 2D raster canvas.",
	Long:  "starcanvas is a command-line tool for synthesizing astronomical star-field frames and calibration imagery by compositing Gaussian light spots onto a raster canvas.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(renderCommand)
	rootCommand.AddCommand(presetCommand)
}

/*****************************************************************************************************************/

// Execute runs the root command, exiting the process on error the same way the teacher's own
// cmd.Execute does.
func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
