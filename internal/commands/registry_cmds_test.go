package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"GearTrack/internal/model"
)

func TestStudents_EmptyAndList(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	mustRun(t, studentsCmd{}, cfg)
	if !strings.Contains(buf.String(), "No students") {
		t.Fatalf("expected empty roster message, got: %s", buf.String())
	}

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1", "ann@school.edu")
	mustRun(t, studentAddCmd{}, cfg, "Bob", "S-2")

	buf.Reset()
	mustRun(t, studentsCmd{}, cfg)
	out := buf.String()
	if !strings.Contains(out, "name=Ann") || !strings.Contains(out, "name=Bob") || !strings.Contains(out, "Total: 2") {
		t.Fatalf("unexpected roster output: %s", out)
	}
}

func TestStudentAdd_DuplicateBarcode(t *testing.T) {
	cfg := testConfig(t)
	captureOut(t)

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1")
	err := (studentAddCmd{}).Run(context.Background(), cfg, []string{"Other", "S-1"})
	if err == nil {
		t.Fatal("expected duplicate barcode error")
	}
}

func TestStudentEdit_RenameCascadesIntoHistory(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1")
	mustRun(t, equipmentAddCmd{}, cfg, "Tripod", "T-1")
	mustRun(t, scanCmd{}, cfg, "S-1")
	mustRun(t, scanCmd{}, cfg, "T-1")
	mustRun(t, confirmCmd{}, cfg)

	mustRun(t, studentEditCmd{}, cfg, "S-1", "-barcode", "S-1X")

	// The open transaction followed the rename: a scan of the new pass
	// still shows the open item.
	buf.Reset()
	mustRun(t, scanCmd{}, cfg, "S-1X")
	if !strings.Contains(buf.String(), "has 1 item(s) out") {
		t.Fatalf("rename did not cascade: %s", buf.String())
	}
}

func TestStudentEdit_NoFlagsIsUsage(t *testing.T) {
	cfg := testConfig(t)
	if err := (studentEditCmd{}).Run(context.Background(), cfg, []string{"S-1"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestStudentImportAndExport_RoundTrip(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)
	dir := t.TempDir()

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1")

	// Export, wipe nothing, re-import: the existing barcode is skipped.
	outFile := filepath.Join(dir, "students.json")
	mustRun(t, exportStudentsCmd{}, cfg, "-o", outFile)

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var students []model.Student
	if err := json.Unmarshal(data, &students); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(students) != 1 || students[0].Barcode != "S-1" {
		t.Fatalf("unexpected export contents: %+v", students)
	}

	buf.Reset()
	mustRun(t, studentImportCmd{}, cfg, outFile)
	if !strings.Contains(buf.String(), "Imported 0 student(s), skipped 1 existing") {
		t.Fatalf("unexpected import output: %s", buf.String())
	}
}

func TestStudentPhoto_SetAndTooLarge(t *testing.T) {
	cfg := testConfig(t)
	captureOut(t)
	dir := t.TempDir()

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1")

	small := filepath.Join(dir, "small.jpg")
	if err := os.WriteFile(small, []byte("jpegdata"), 0o600); err != nil {
		t.Fatal(err)
	}
	mustRun(t, studentPhotoCmd{}, cfg, "S-1", small)

	big := filepath.Join(dir, "big.jpg")
	if err := os.WriteFile(big, make([]byte, 500_001), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := (studentPhotoCmd{}).Run(context.Background(), cfg, []string{"S-1", big}); err == nil {
		t.Fatal("expected photo size error")
	}
}

func TestEquipmentDel_KeepsHistory(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1")
	mustRun(t, equipmentAddCmd{}, cfg, "Tripod", "T-1")
	mustRun(t, scanCmd{}, cfg, "S-1")
	mustRun(t, scanCmd{}, cfg, "T-1")
	mustRun(t, confirmCmd{}, cfg)
	mustRun(t, scanCmd{}, cfg, "T-1")
	mustRun(t, confirmCmd{}, cfg)

	mustRun(t, equipmentDelCmd{}, cfg, "T-1")

	buf.Reset()
	mustRun(t, historyCmd{}, cfg)
	if !strings.Contains(buf.String(), "Total: 1") {
		t.Fatalf("history lost after delete: %s", buf.String())
	}
}

func TestSeed_LoadsStockInventoryOnce(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	mustRun(t, seedCmd{}, cfg)
	if !strings.Contains(buf.String(), "Seeded 29 equipment item(s)") {
		t.Fatalf("unexpected seed output: %s", buf.String())
	}

	buf.Reset()
	mustRun(t, seedCmd{}, cfg)
	if !strings.Contains(buf.String(), "Seeded 0 equipment item(s)") {
		t.Fatalf("second seed must skip everything: %s", buf.String())
	}
}

func TestExportEquipment_WritesCSV(t *testing.T) {
	cfg := testConfig(t)
	captureOut(t)
	dir := t.TempDir()

	mustRun(t, equipmentAddCmd{}, cfg, "Tripod", "T-1", "north closet")

	outFile := filepath.Join(dir, "labels.csv")
	mustRun(t, exportEquipmentCmd{}, cfg, "-o", outFile)

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	want := "Type,Barcode,Description\nTripod,T-1,north closet\n"
	if string(data) != want {
		t.Fatalf("csv mismatch:\n got: %q\nwant: %q", string(data), want)
	}
}

func TestStudentsAndEquipment_SearchFilter(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	mustRun(t, studentAddCmd{}, cfg, "Ann Park", "S-1")
	mustRun(t, studentAddCmd{}, cfg, "Bob Reyes", "S-2")
	mustRun(t, equipmentAddCmd{}, cfg, "Tripod", "T-1")
	mustRun(t, equipmentAddCmd{}, cfg, "Microphone", "M-1")

	buf.Reset()
	mustRun(t, studentsCmd{}, cfg, "reyes")
	if !strings.Contains(buf.String(), "name=Bob Reyes") || strings.Contains(buf.String(), "Ann") {
		t.Fatalf("student search: %s", buf.String())
	}

	buf.Reset()
	mustRun(t, equipmentCmd{}, cfg, "micro")
	if !strings.Contains(buf.String(), "M-1") || strings.Contains(buf.String(), "T-1") {
		t.Fatalf("equipment search: %s", buf.String())
	}
}

func TestHistory_StatusFilter(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	mustRun(t, studentAddCmd{}, cfg, "Ann", "S-1")
	mustRun(t, equipmentAddCmd{}, cfg, "Tripod", "T-1")
	mustRun(t, equipmentAddCmd{}, cfg, "Tripod", "T-2")
	mustRun(t, scanCmd{}, cfg, "S-1")
	mustRun(t, scanCmd{}, cfg, "T-1")
	mustRun(t, confirmCmd{}, cfg)
	mustRun(t, scanCmd{}, cfg, "S-1")
	mustRun(t, scanCmd{}, cfg, "T-2")
	mustRun(t, confirmCmd{}, cfg)
	mustRun(t, scanCmd{}, cfg, "T-1")
	mustRun(t, confirmCmd{}, cfg)

	buf.Reset()
	mustRun(t, historyCmd{}, cfg, "-status", "out")
	if !strings.Contains(buf.String(), "Total: 1") || !strings.Contains(buf.String(), "T-2") {
		t.Fatalf("out filter: %s", buf.String())
	}

	buf.Reset()
	mustRun(t, historyCmd{}, cfg, "-status", "in")
	if !strings.Contains(buf.String(), "Total: 1") || !strings.Contains(buf.String(), "T-1") {
		t.Fatalf("in filter: %s", buf.String())
	}

	if err := (historyCmd{}).Run(context.Background(), cfg, []string{"-status", "bogus"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for bad status, got %v", err)
	}
}
