/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/observerly/starcanvas/pkg/adql"
	"github.com/observerly/starcanvas/pkg/astrometry"
)

/*****************************************************************************************************************/

type SIMBADQuery struct {
	RA        float64 // right ascension (in degrees)
	Dec       float64 // declination (in degrees)
	Radius    float64 // search radius (in degrees)
	Limit     int     // maximum number of records to return
	Threshold float64 // limiting magnitude
}

/*****************************************************************************************************************/

// SIMBADServiceClient is a TAP client pinned at the SIMBAD sync endpoint, returning catalog
// sources ready for PopulateCanvas.
type SIMBADServiceClient struct {
	*adql.TapClient
	Query SIMBADQuery
}

/*****************************************************************************************************************/

func NewSIMBADServiceClient() *SIMBADServiceClient {
	// https://simbad.unistra.fr/simbad/sim-tap/sync
	uri := url.URL{
		Scheme: "https",
		Host:   "simbad.unistra.fr",
		Path:   "/simbad/sim-tap/sync",
	}

	headers := map[string]string{
		// Default content type for TAP services:
		"Content-Type": "application/x-www-form-urlencoded",
		// Ensure we are good citizens and identify ourselves:
		"X-Requested-By": "@observerly/starcanvas",
	}

	return &SIMBADServiceClient{
		TapClient: adql.NewTapClient(uri, 60*time.Second, headers),
		Query:     SIMBADQuery{},
	}
}

/*****************************************************************************************************************/

const simbadRecord = "basic.oid AS uid, basic.main_id AS designation, basic.ra AS ra, basic.dec AS dec, basic.pmra AS pmra, basic.pmdec AS pmdec, basic.plx_value AS parallax, flux.flux AS flux, allfluxes.G AS magnitude"

// @see https://simbad.u-strasbg.fr/Pages/guide/sim-q.htx
const simbadADQLTemplate = `
	SELECT TOP {{.Limit}} {{.Record}}
	FROM basic
	LEFT JOIN flux
		ON basic.oid = flux.oidref
		AND flux.filter = 'G'
	LEFT JOIN allfluxes
		ON basic.oid = allfluxes.oidref
	WHERE CONTAINS(
		POINT('ICRS', basic.ra, basic.dec),
		CIRCLE('ICRS', {{.RA}}, {{.Dec}}, {{.Radius}})
	) = 1 AND allfluxes.G < {{.Threshold}}
	ORDER BY magnitude ASC;
`

/*****************************************************************************************************************/

// PerformRadialSearch queries SIMBAD for up to limit sources within radius degrees of eq, brighter
// than threshold, returning them as catalog Source records ordered by ascending magnitude.
func (s *SIMBADServiceClient) PerformRadialSearch(eq astrometry.ICRSEquatorialCoordinate, radius float64, limit int, threshold float64) ([]Source, error) {
	// Set the query parameters:
	s.Query.RA = eq.RA
	s.Query.Dec = eq.Dec
	s.Query.Radius = radius
	s.Query.Limit = limit
	s.Query.Threshold = threshold

	// Construct the ADQL query from the template:
	adqlQuery, err := s.BuildADQLQuery(simbadADQLTemplate, struct {
		Record    string
		RA        float64
		Dec       float64
		Radius    float64
		Limit     int
		Threshold float64
	}{
		Record:    simbadRecord,
		RA:        s.Query.RA,
		Dec:       s.Query.Dec,
		Radius:    s.Query.Radius,
		Limit:     s.Query.Limit,
		Threshold: s.Query.Threshold,
	})
	if err != nil {
		return nil, err
	}

	// Execute the query and get the response:
	tapResponse, err := s.ExecuteADQLQuery(adqlQuery)
	if err != nil {
		return nil, err
	}

	sources := make([]Source, 0, len(tapResponse.Data))

	for _, record := range tapResponse.Data {
		sources = append(sources, parseSIMBADRecord(record))
	}

	return sources, nil
}

/*****************************************************************************************************************/

// parseSIMBADRecord converts a single SIMBAD JSON row (uid, designation, ra, dec, pmra, pmdec,
// parallax, flux, magnitude) into a Source. A field holding a nil or non-numeric JSON value
// (SIMBAD frequently omits proper motion, parallax, or flux for faint sources) is left at its
// zero value rather than failing the whole row.
func parseSIMBADRecord(record []interface{}) Source {
	return Source{
		UID:                       fmt.Sprintf("%v", record[0]),
		Designation:               strings.Join(strings.Fields(fmt.Sprintf("%v", record[1])), " "),
		RA:                        asFloat64(record[2]),
		Dec:                       asFloat64(record[3]),
		ProperMotionRA:            asFloat64(record[4]),
		ProperMotionDec:           asFloat64(record[5]),
		Parallax:                  asFloat64(record[6]),
		PhotometricGMeanFlux:      asFloat64(record[7]),
		PhotometricGMeanMagnitude: asFloat64(record[8]),
	}
}

/*****************************************************************************************************************/

// asFloat64 best-effort extracts a float64 from a decoded JSON value, treating nil or a
// non-numeric value as zero.
func asFloat64(val interface{}) float64 {
	v, _ := val.(float64)
	return v
}

/*****************************************************************************************************************/
