package rec

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// WriteRecordsCSV writes the dataset as CSV with a header row. Absent
// fields become empty cells; generated values are never empty strings, so
// the encoding is unambiguous.
func WriteRecordsCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for i := range ds.Records {
		if err := cw.Write(ds.Records[i].Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecordsCSV reads records from a CSV stream with the same header as
// WriteRecordsCSV and calls fn for each parsed record. Empty cells map
// back to absent fields.
func ReadRecordsCSV(r io.Reader, fn func(Record) error) error {
	cr := csv.NewReader(bufio.NewReader(r))
	header, err := cr.Read()
	if err != nil {
		return err
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[h] = i
	}
	get := func(row []string, key string) string {
		if p, ok := idx[key]; ok && p < len(row) {
			return row[p]
		}
		return ""
	}
	field := func(row []string, key string) Field {
		if v := get(row, key); v != "" {
			return NewField(v)
		}
		return NoValue
	}
	for {
		row, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		rec := Record{
			ID:          get(row, "id"),
			OriginalID:  get(row, "original_id"),
			Name:        field(row, "name"),
			Address:     field(row, "address"),
			City:        field(row, "city"),
			DateOfBirth: field(row, "date_of_birth"),
		}
		if rec.ID == "" {
			return fmt.Errorf("csv row without id")
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// WriteRecordsJSONL writes records as JSON lines, absent fields as null.
func WriteRecordsJSONL(w io.Writer, ds *Dataset) error {
	enc := json.NewEncoder(w)
	for i := range ds.Records {
		if err := enc.Encode(&ds.Records[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecordsJSONL reads records from a JSON lines stream.
func ReadRecordsJSONL(r io.Reader, fn func(Record) error) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
