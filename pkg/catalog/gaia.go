/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"net/url"
	"strconv"
	"time"

	"github.com/observerly/starcanvas/pkg/adql"
	"github.com/observerly/starcanvas/pkg/astrometry"
)

/*****************************************************************************************************************/

type GAIAQuery struct {
	RA     float64 // right ascension (in degrees)
	Dec    float64 // declination (in degrees)
	Radius float64 // search radius (in degrees)
	Limit  float64 // limiting magnitude
}

/*****************************************************************************************************************/

// GAIAServiceClient is a TAP client pinned at the GAIA DR3 sync endpoint, returning catalog
// sources ready for PopulateCanvas.
type GAIAServiceClient struct {
	*adql.TapClient
	Query GAIAQuery
}

/*****************************************************************************************************************/

// Gaia DR3 service handler. The five-parameter astrometric solution, positions on the sky (α, δ),
// parallaxes, and proper motions, are given for around 1.46 billion sources, with a limiting magnitude
// of G = 21.
func NewGAIAServiceClient() *GAIAServiceClient {
	uri := url.URL{
		Scheme: "https",
		Host:   "gea.esac.esa.int",
		Path:   "/tap-server/tap/sync",
	}

	headers := map[string]string{
		// Default content type for TAP services:
		"Content-Type": "application/x-www-form-urlencoded",
		// Ensure we are good citizens and identify ourselves:
		"X-Requested-By": "@observerly/starcanvas",
	}

	return &GAIAServiceClient{
		TapClient: adql.NewTapClient(uri, 60*time.Second, headers),
		Query:     GAIAQuery{},
	}
}

/*****************************************************************************************************************/

const gaiaRecord = `source_id, designation, ra, dec, pmra, pmdec, parallax, phot_g_mean_flux, phot_g_mean_mag`

// @see https://gea.esac.esa.int/archive/documentation/GDR3/Gaia_archive/chap_datamodel/
// N.B. (use only gold standard data, e.g., photometry processing mode (byte) i.e., phot_proc_mode = '0'):
const gaiaADQLTemplate = `
	SELECT {{.Record}}
	FROM gaiadr3.gaia_source
	WHERE CONTAINS(
		POINT('ICRS', ra, dec),
		CIRCLE('ICRS', {{.RA}}, {{.Dec}}, {{.Radius}})
	) = 1 AND phot_g_mean_mag < {{.Limit}} AND phot_proc_mode = '0'
`

/*****************************************************************************************************************/

// PerformRadialSearch queries GAIA DR3 for every source within radius degrees of eq brighter than
// the limiting magnitude limit, returning them as catalog Source records.
func (g *GAIAServiceClient) PerformRadialSearch(eq astrometry.ICRSEquatorialCoordinate, radius float64, limit float64) ([]Source, error) {
	// Set the query parameters:
	g.Query.RA = eq.RA
	g.Query.Dec = eq.Dec
	g.Query.Radius = radius
	g.Query.Limit = limit

	// Construct the ADQL query from the template:
	adqlQuery, err := g.BuildADQLQuery(gaiaADQLTemplate, struct {
		Record string
		RA     float64
		Dec    float64
		Radius float64
		Limit  float64
	}{
		Record: gaiaRecord,
		RA:     g.Query.RA,
		Dec:    g.Query.Dec,
		Radius: g.Query.Radius,
		Limit:  g.Query.Limit,
	})
	if err != nil {
		return nil, err
	}

	// Execute the query and parse the CSV response, skipping the header row:
	records, err := g.ExecuteADQLQueryCSV(adqlQuery)
	if err != nil {
		return nil, err
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var sources []Source

	for _, record := range records[1:] {
		source, ok := parseGAIARecord(record)
		if !ok {
			continue
		}

		sources = append(sources, source)
	}

	return sources, nil
}

/*****************************************************************************************************************/

// parseGAIARecord converts a single GAIA DR3 CSV row (source_id, designation, ra, dec, pmra,
// pmdec, parallax, phot_g_mean_flux, phot_g_mean_mag) into a Source, reporting ok=false for a
// malformed row rather than erroring the whole search.
func parseGAIARecord(record []string) (Source, bool) {
	ra, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return Source{}, false
	}

	dec, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return Source{}, false
	}

	pmra, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return Source{}, false
	}

	pmdec, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return Source{}, false
	}

	parallax, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return Source{}, false
	}

	flux, err := strconv.ParseFloat(record[7], 64)
	if err != nil {
		return Source{}, false
	}

	mag, err := strconv.ParseFloat(record[8], 64)
	if err != nil {
		return Source{}, false
	}

	return Source{
		UID:                       record[0],
		Designation:               record[1],
		RA:                        ra,
		Dec:                       dec,
		ProperMotionRA:            pmra,
		ProperMotionDec:           pmdec,
		Parallax:                  parallax,
		PhotometricGMeanFlux:      flux,
		PhotometricGMeanMagnitude: mag,
	}, true
}

/*****************************************************************************************************************/
