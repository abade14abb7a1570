/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package astrometry holds the small set of celestial-sphere types shared between the catalog
// client and the pixel-space renderer: a star's sky position, kept independent of any particular
// projection or pixel transform.
package astrometry

/*****************************************************************************************************************/

// ICRSEquatorialCoordinate is a star's right ascension and declination, in degrees, in the
// International Celestial Reference System.
type ICRSEquatorialCoordinate struct {
	RA  float64
	Dec float64
}

/*****************************************************************************************************************/
