package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/barttc/tab/cmd/terminal"
)

func withDiagnoseStub(t *testing.T, report terminal.Report) {
	t.Helper()
	orig := diagnose
	diagnose = func() terminal.Report { return report }
	t.Cleanup(func() { diagnose = orig })
}

func testReport() terminal.Report {
	return terminal.Report{
		Platform:  "linux",
		Graphical: true,
		Parent:    "kitty",
		Selected:  "kitty",
		Facilities: []terminal.Facility{
			{Name: "kitty", Found: true, Path: "/usr/bin/kitty"},
			{Name: "xterm", Found: false},
		},
	}
}

func TestRunDoctorTable(t *testing.T) {
	withDiagnoseStub(t, testReport())

	var out bytes.Buffer
	if err := runDoctor(&DoctorParams{}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"platform:  linux",
		"graphical: yes",
		"inside:    kitty",
		"selected:  kitty",
		"/usr/bin/kitty",
		"xterm",
		"1 of 2 facilities available",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunDoctorJSON(t *testing.T) {
	withDiagnoseStub(t, testReport())

	var out bytes.Buffer
	if err := runDoctor(&DoctorParams{JSON: true}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report terminal.Report
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if report.Selected != "kitty" || len(report.Facilities) != 2 {
		t.Errorf("unexpected report: %+v", report)
	}
	if !report.Facilities[0].Found || report.Facilities[1].Found {
		t.Errorf("unexpected facility status: %+v", report.Facilities)
	}
}

func TestRunDoctorNoGraphicalSession(t *testing.T) {
	report := testReport()
	report.Graphical = false
	withDiagnoseStub(t, report)

	var out bytes.Buffer
	if err := runDoctor(&DoctorParams{}, &out); err == nil {
		t.Fatal("expected error for non-graphical session")
	}
}
