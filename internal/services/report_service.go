package services

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// GroupsReport is the CSV export of the group listing.
type GroupsReport struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// GroupsReportCSV renders the group stats as CSV, one row per group in
// canonical pair order.
func (s *Service) GroupsReportCSV() (*GroupsReport, error) {
	rows, err := s.ListGroups()
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Route", "Trips", "Drivers", "Avg", "Min", "Max", "Total"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.CityA + " — " + r.CityB,
			strconv.FormatInt(r.Trips, 10),
			strconv.FormatInt(r.Drivers, 10),
			formatPrice(r.AvgPrice),
			formatPrice(r.MinPrice),
			formatPrice(r.MaxPrice),
			formatPrice(r.TotalPrice),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &GroupsReport{Filename: "groups.csv", Content: buf.String()}, nil
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
