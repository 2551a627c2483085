package store_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/mgrabka/preop-intake/catalog"
	"github.com/mgrabka/preop-intake/config"
	"github.com/mgrabka/preop-intake/consult"
	"github.com/mgrabka/preop-intake/database"
	"github.com/mgrabka/preop-intake/model"
	"github.com/mgrabka/preop-intake/store"
)

// testDB opens a migrated in-memory database. Shared cache keys the
// database by test name so pooled connections see the same data.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(config.Config{
		DBUrl: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testPatient(name string) model.PatientData {
	warfarin, _ := catalog.ByID("warfarin")
	return model.PatientData{
		PersonalInfo: model.PersonalInfo{
			FullName:         name,
			DateOfBirth:      "1958-03-21",
			PlannedProcedure: "Cholecystektomia laparoskopowa",
			ProcedureDate:    "2024-06-15",
		},
		ChronicDiseases: model.ChronicDiseases{
			Cardiovascular: []string{consult.ConditionArrhythmia},
		},
		SelectedDrugs: []model.SelectedDrug{
			{ID: "sel-1", Drug: warfarin, Dosage: "5mg", Frequency: "1x dziennie"},
		},
		Consents: model.Consents{
			DataProcessing:          true,
			QuestionnaireSubmission: true,
		},
	}
}

func TestSubmissionLifecycle(t *testing.T) {
	ctx := context.Background()
	submissions := store.NewSubmissions(testDB(t))

	submitted, err := submissions.Submit(ctx, testPatient("Jan Kowalski"))
	if err != nil {
		t.Fatal(err)
	}
	if submitted.ID == "" || submitted.Status != model.StatusSubmitted {
		t.Fatalf("submitted = %+v", submitted)
	}

	all, err := submissions.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].ID != submitted.ID {
		t.Fatalf("All() = %+v", all)
	}

	loaded, err := submissions.ByID(ctx, submitted.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Patient.PersonalInfo.FullName != "Jan Kowalski" {
		t.Errorf("loaded patient name = %q", loaded.Patient.PersonalInfo.FullName)
	}
	if len(loaded.Patient.SelectedDrugs) != 1 || loaded.Patient.SelectedDrugs[0].Drug.ID != "warfarin" {
		t.Errorf("loaded drugs = %+v", loaded.Patient.SelectedDrugs)
	}

	err = submissions.UpdateStatus(ctx, submitted.ID, model.StatusReviewed)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err = submissions.ByID(ctx, submitted.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Status != model.StatusReviewed {
		t.Errorf("status after update = %q", loaded.Status)
	}
}

func TestSubmissionNotFound(t *testing.T) {
	ctx := context.Background()
	submissions := store.NewSubmissions(testDB(t))

	_, err := submissions.ByID(ctx, "no-such-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ByID(unknown) err = %v, want ErrNotFound", err)
	}

	err = submissions.UpdateStatus(ctx, "no-such-id", model.StatusCompleted)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateStatus(unknown) err = %v, want ErrNotFound", err)
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	submissions := store.NewSubmissions(testDB(t))

	notified := 0
	unsubscribe := submissions.Subscribe(func() { notified++ })

	submitted, err := submissions.Submit(ctx, testPatient("Anna Nowak"))
	if err != nil {
		t.Fatal(err)
	}
	if notified != 1 {
		t.Errorf("after submit: %d notifications, want 1", notified)
	}

	err = submissions.UpdateStatus(ctx, submitted.ID, model.StatusReviewed)
	if err != nil {
		t.Fatal(err)
	}
	if notified != 2 {
		t.Errorf("after status update: %d notifications, want 2", notified)
	}

	unsubscribe()
	_, err = submissions.Submit(ctx, testPatient("Piotr Wiśniewski"))
	if err != nil {
		t.Fatal(err)
	}
	if notified != 2 {
		t.Errorf("after unsubscribe: %d notifications, want 2", notified)
	}
}

func TestExaminationUpsert(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	submissions := store.NewSubmissions(db)
	examinations := store.NewExaminations(db)

	submitted, err := submissions.Submit(ctx, testPatient("Jan Kowalski"))
	if err != nil {
		t.Fatal(err)
	}

	exam := model.Examination{
		SubmissionID: submitted.ID,
		VitalSigns:   model.VitalSigns{Systolic: "135", Diastolic: "85", HeartRate: "72"},
		Intubation:   model.IntubationAssessment{Mallampati: "II"},
		ASA:          model.ASAClassification{Class: "II", Reason: "kontrolowane nadciśnienie"},
		ExaminedBy:   "Jan Kowalski",
	}
	stored, err := examinations.Upsert(ctx, exam)
	if err != nil {
		t.Fatal(err)
	}
	if stored.CompletedAt.IsZero() {
		t.Error("Upsert did not stamp CompletedAt")
	}

	loaded, err := examinations.BySubmission(ctx, submitted.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ASA.Class != "II" || loaded.VitalSigns.Systolic != "135" {
		t.Errorf("loaded examination = %+v", loaded)
	}

	// second write replaces the record
	exam.ASA.Class = "III"
	if _, err := examinations.Upsert(ctx, exam); err != nil {
		t.Fatal(err)
	}
	loaded, err = examinations.BySubmission(ctx, submitted.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ASA.Class != "III" {
		t.Errorf("examination class after upsert = %q, want III", loaded.ASA.Class)
	}
}

func TestExaminationNotFound(t *testing.T) {
	examinations := store.NewExaminations(testDB(t))

	_, err := examinations.BySubmission(context.Background(), "no-such-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("BySubmission(unknown) err = %v, want ErrNotFound", err)
	}
}
