package rec

import (
	"fmt"

	levenshtein "github.com/agnivade/levenshtein"
)

// Verify checks the structural guarantees of a generated dataset:
// every record's OriginalID resolves to exactly one unique record, unique
// record ids are pairwise distinct, all row ids are distinct, and every
// unique record precedes the first duplicate.
func Verify(ds *Dataset) error {
	uniques := map[string]bool{}
	ids := map[string]bool{}
	firstDup := -1
	for i := range ds.Records {
		r := &ds.Records[i]
		if r.ID == "" {
			return fmt.Errorf("record %d: empty id", i)
		}
		if ids[r.ID] {
			return fmt.Errorf("record %d: id %s already used", i, r.ID)
		}
		ids[r.ID] = true
		if r.IsUnique() {
			if firstDup >= 0 {
				return fmt.Errorf("record %d: unique record after first duplicate (index %d)", i, firstDup)
			}
			uniques[r.ID] = true
		} else if firstDup < 0 {
			firstDup = i
		}
	}
	for i := range ds.Records {
		r := &ds.Records[i]
		if !uniques[r.OriginalID] {
			return fmt.Errorf("record %d: original_id %s does not resolve to a unique record", i, r.OriginalID)
		}
	}
	return nil
}

// Stats summarizes how dirty a dataset actually is.
type Stats struct {
	Total      int
	Unique     int
	Duplicates int

	// Corrupted counts duplicates whose name or address differs from the
	// source record.
	Corrupted          int
	MaxNameDistance    int
	MaxAddressDistance int

	// MissingByColumn counts absent values per optional column.
	MissingByColumn map[string]int
}

// Measure computes corruption and missingness statistics. Edit distances
// are only taken where both the duplicate and its source have the field.
func Measure(ds *Dataset) *Stats {
	s := &Stats{
		Total:           len(ds.Records),
		MissingByColumn: map[string]int{"name": 0, "address": 0, "city": 0, "date_of_birth": 0},
	}
	sources := map[string]Record{}
	for _, r := range ds.Records {
		if r.IsUnique() {
			sources[r.ID] = r
		}
	}
	for _, r := range ds.Records {
		if !r.Name.Valid {
			s.MissingByColumn["name"]++
		}
		if !r.Address.Valid {
			s.MissingByColumn["address"]++
		}
		if !r.City.Valid {
			s.MissingByColumn["city"]++
		}
		if !r.DateOfBirth.Valid {
			s.MissingByColumn["date_of_birth"]++
		}
		if r.IsUnique() {
			s.Unique++
			continue
		}
		s.Duplicates++
		src, ok := sources[r.OriginalID]
		if !ok {
			continue
		}
		changed := false
		if r.Name.Valid && src.Name.Valid {
			if d := levenshtein.ComputeDistance(src.Name.Text, r.Name.Text); d > 0 {
				changed = true
				if d > s.MaxNameDistance {
					s.MaxNameDistance = d
				}
			}
		}
		if r.Address.Valid && src.Address.Valid {
			if d := levenshtein.ComputeDistance(src.Address.Text, r.Address.Text); d > 0 {
				changed = true
				if d > s.MaxAddressDistance {
					s.MaxAddressDistance = d
				}
			}
		}
		if changed {
			s.Corrupted++
		}
	}
	return s
}
