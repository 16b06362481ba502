package rec

import "testing"

func sampleDataset() *Dataset {
	u1 := Record{ID: "u1", OriginalID: "u1", Name: NewField("Ana Silva"), Address: NewField("Rua Augusta 100"), City: NewField("Lisboa"), DateOfBirth: NewField("1980-01-01")}
	u2 := Record{ID: "u2", OriginalID: "u2", Name: NewField("Bob Jones"), Address: NoValue, City: NewField("Leeds"), DateOfBirth: NewField("1975-06-30")}
	d1 := Record{ID: "d1", OriginalID: "u1", Name: NewField("Anna Silva"), Address: NewField("Rua Augusta 100"), City: NoValue, DateOfBirth: NewField("1980-01-01")}
	return &Dataset{Records: []Record{u1, u2, d1}}
}

func TestVerifyAcceptsWellFormedDataset(t *testing.T) {
	if err := Verify(sampleDataset()); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsDanglingOriginalID(t *testing.T) {
	ds := sampleDataset()
	ds.Records[2].OriginalID = "nope"
	if err := Verify(ds); err == nil {
		t.Fatalf("dangling original_id not detected")
	}
}

func TestVerifyRejectsReusedID(t *testing.T) {
	ds := sampleDataset()
	ds.Records[2].ID = "u2"
	if err := Verify(ds); err == nil {
		t.Fatalf("reused id not detected")
	}
}

func TestVerifyRejectsUniqueAfterDuplicate(t *testing.T) {
	ds := sampleDataset()
	late := Record{ID: "u3", OriginalID: "u3", Name: NewField("Cam Diaz")}
	ds.Records = append(ds.Records, late)
	if err := Verify(ds); err == nil {
		t.Fatalf("unique record after duplicate not detected")
	}
}

func TestMeasure(t *testing.T) {
	s := Measure(sampleDataset())
	if s.Total != 3 || s.Unique != 2 || s.Duplicates != 1 {
		t.Fatalf("bad counts: %+v", s)
	}
	if s.Corrupted != 1 {
		t.Fatalf("expected 1 corrupted duplicate, got %d", s.Corrupted)
	}
	if s.MaxNameDistance != 1 {
		t.Fatalf("expected name distance 1, got %d", s.MaxNameDistance)
	}
	if s.MaxAddressDistance != 0 {
		t.Fatalf("expected address distance 0, got %d", s.MaxAddressDistance)
	}
	if s.MissingByColumn["address"] != 1 || s.MissingByColumn["city"] != 1 || s.MissingByColumn["name"] != 0 {
		t.Fatalf("bad missing counts: %v", s.MissingByColumn)
	}
}
