package rec

import "encoding/json"

// Columns is the column layout of a generated dataset, in output order.
var Columns = []string{"id", "original_id", "name", "address", "city", "date_of_birth"}

// Field is an optional text value. Absence is explicit: a dropped field is
// the zero Field, never an empty string standing in for "no value".
type Field struct {
	Text  string
	Valid bool
}

// NewField wraps a present text value.
func NewField(text string) Field { return Field{Text: text, Valid: true} }

// NoValue marks an absent field.
var NoValue = Field{}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Text)
}

func (f *Field) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Field{}
		return nil
	}
	if err := json.Unmarshal(b, &f.Text); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Record is one row of a generated dataset. ID is unique per row;
// OriginalID names the identity the row describes and is the ground-truth
// label for a matcher: unique records reference themselves, duplicates
// reference the unique record they were derived from.
type Record struct {
	ID          string `json:"id" msgpack:"id"`
	OriginalID  string `json:"original_id" msgpack:"original_id"`
	Name        Field  `json:"name" msgpack:"name"`
	Address     Field  `json:"address" msgpack:"address"`
	City        Field  `json:"city" msgpack:"city"`
	DateOfBirth Field  `json:"date_of_birth" msgpack:"date_of_birth"`
}

// IsUnique reports whether the record is its own identity.
func (r Record) IsUnique() bool { return r.ID == r.OriginalID }

// Row renders the record in column order. Absent fields become empty cells.
func (r Record) Row() []string {
	cell := func(f Field) string {
		if !f.Valid {
			return ""
		}
		return f.Text
	}
	return []string{r.ID, r.OriginalID, cell(r.Name), cell(r.Address), cell(r.City), cell(r.DateOfBirth)}
}

// Dataset is an ordered collection of records: all unique records first,
// then all duplicates. It is not mutated after Generate returns it.
type Dataset struct {
	Records []Record
}

func (d *Dataset) Len() int { return len(d.Records) }
