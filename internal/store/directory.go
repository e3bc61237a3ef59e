package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go-trade-dashboard/internal/model"
)

// defaultNames seeds the directory with the countries of the trade dataset
var defaultNames = map[string]string{
	"EGY": "Egypt", "COD": "Congo (DRC)", "TZA": "Tanzania", "ZAF": "South Africa", "KEN": "Kenya",
	"UGA": "Uganda", "SDN": "Sudan", "DZA": "Algeria", "MAR": "Morocco", "AGO": "Angola",
	"GHA": "Ghana", "CIV": "Ivory Coast", "CMR": "Cameroon", "NER": "Niger", "MLI": "Mali",
	"BFA": "Burkina Faso", "TCD": "Chad", "SEN": "Senegal", "ZWE": "Zimbabwe", "GIN": "Guinea",
	"RWA": "Rwanda", "BEN": "Benin", "BDI": "Burundi", "TUN": "Tunisia", "TGO": "Togo",
	"SLE": "Sierra Leone", "CAF": "Central African Republic", "LBR": "Liberia", "MRT": "Mauritania",
	"ERI": "Eritrea", "GMB": "Gambia", "BWA": "Botswana", "NAM": "Namibia", "GAB": "Gabon",
	"GNB": "Guinea-Bissau", "GNQ": "Equatorial Guinea", "MUS": "Mauritius", "SWZ": "Eswatini",
	"SYC": "Seychelles", "ETH": "Ethiopia", "NGA": "Nigeria", "SOM": "Somalia", "LBY": "Libya",
	"MOZ": "Mozambique", "MDG": "Madagascar", "ZMB": "Zambia", "COG": "Congo", "MWI": "Malawi",
	"SSD": "South Sudan", "COM": "Comoros", "CPV": "Cape Verde", "LSO": "Lesotho",
	"STP": "Sao Tome and Principe", "DJI": "Djibouti",
}

// DefaultNames returns a copy of the built-in code → name table
func DefaultNames() map[string]string {
	out := make(map[string]string, len(defaultNames))
	for k, v := range defaultNames {
		out[k] = v
	}
	return out
}

// Directory maps ISO-3 country codes to display names. It never changes after
// construction.
type Directory struct {
	names map[string]string
	order []string // sorted by display name
}

// NewDirectory copies names into an immutable Directory
func NewDirectory(names map[string]string) *Directory {
	d := &Directory{names: make(map[string]string, len(names))}
	for code, name := range names {
		d.names[strings.ToUpper(code)] = name
		d.order = append(d.order, strings.ToUpper(code))
	}
	sort.Slice(d.order, func(i, j int) bool {
		ni, nj := d.names[d.order[i]], d.names[d.order[j]]
		if ni != nj {
			return ni < nj
		}
		return d.order[i] < d.order[j]
	})
	return d
}

// BuildDirectory keeps only the codes present in the dataset, so the selector
// never offers a country without data. Codes without a known name are
// returned as missing.
func BuildDirectory(codes []string, names map[string]string) (*Directory, []string) {
	known := make(map[string]string, len(codes))
	var missing []string
	for _, code := range codes {
		if name, ok := names[code]; ok {
			known[code] = name
		} else {
			missing = append(missing, code)
		}
	}
	return NewDirectory(known), missing
}

// Name resolves a code, failing with *model.LookupError when it is unknown
func (d *Directory) Name(code string) (string, error) {
	name, ok := d.names[code]
	if !ok {
		return "", &model.LookupError{Code: code}
	}
	return name, nil
}

// Len returns the number of entries
func (d *Directory) Len() int { return len(d.names) }

// Options lists the directory as selector entries ordered by name
func (d *Directory) Options() []model.CountryOption {
	opts := make([]model.CountryOption, 0, len(d.order))
	for _, code := range d.order {
		opts = append(opts, model.CountryOption{Label: d.names[code], Value: code})
	}
	return opts
}

// LoadDirectoryFile reads a "code,name" CSV and merges it over base.
// A header row whose first field is "code" is skipped.
func LoadDirectoryFile(path string, base map[string]string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.LoadError{Path: path, Reason: "failed to open directory file", Err: err}
	}
	defer f.Close()

	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true
	line := 0
	for {
		row, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &model.LoadError{Path: path, Reason: "malformed directory file", Err: err}
		}
		code := strings.ToUpper(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])
		if line == 1 && code == "CODE" {
			continue
		}
		if code == "" || name == "" {
			return nil, &model.LoadError{Path: path, Reason: fmt.Sprintf("line %d: empty code or name", line)}
		}
		merged[code] = name
	}
	return merged, nil
}
