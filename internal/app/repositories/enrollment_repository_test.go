package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// rowResult is the scripted outcome of a single QueryRow statement.
type rowResult struct {
	id  int64
	err error
}

func (r rowResult) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.id
	}
	return nil
}

// scriptedTx satisfies pgx.Tx, dispatches QueryRow by target table and
// records executed statements in order.
type scriptedTx struct {
	results   map[string]rowResult
	stmts     []string
	argsByKey map[string][]any
	commits   int
	rollbacks int
}

func newScriptedTx(results map[string]rowResult) *scriptedTx {
	return &scriptedTx{results: results, argsByKey: make(map[string][]any)}
}

// stmtKey classifies the generated SQL by the table it touches.
func stmtKey(sql string) string {
	switch {
	case strings.HasPrefix(sql, "INSERT INTO tutor "):
		return "tutor"
	case strings.HasPrefix(sql, "INSERT INTO localizacion "):
		return "localizacion"
	case strings.HasPrefix(sql, "INSERT INTO alumno "):
		return "alumno"
	case strings.Contains(sql, "FROM ciudad"):
		return "ciudad"
	case strings.Contains(sql, "FROM curso"):
		return "curso"
	}
	return "unknown"
}

func (t *scriptedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	key := stmtKey(sql)
	t.stmts = append(t.stmts, key)
	t.argsByKey[key] = args
	res, ok := t.results[key]
	if !ok {
		return rowResult{err: errors.New("unexpected statement: " + sql)}
	}
	return res
}

func (t *scriptedTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *scriptedTx) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *scriptedTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

func (t *scriptedTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *scriptedTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *scriptedTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *scriptedTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *scriptedTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *scriptedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *scriptedTx) Conn() *pgx.Conn { return nil }

type txBeginnerStub struct {
	tx       *scriptedTx
	beginErr error
}

func (b *txBeginnerStub) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func strPtr(s string) *string { return &s }

func fullEnrollment() *models.TutorEnrollment {
	return &models.TutorEnrollment{
		Tutor: models.Tutor{
			Name:    "Laura",
			Surname: "Gómez Ruiz",
			Email:   "laura@example.com",
		},
		Student: &models.StudentEnrollment{
			Name:       "Pablo",
			CourseName: strPtr("2ESO"),
			District:   strPtr("Chamberí"),
			PostalCode: strPtr("28010"),
		},
		CityName: strPtr("Madrid"),
	}
}

func TestEnrollTutorFullPath(t *testing.T) {
	tx := newScriptedTx(map[string]rowResult{
		"tutor":        {id: 7},
		"ciudad":       {id: 2},
		"curso":        {id: 4},
		"localizacion": {id: 3},
		"alumno":       {id: 9},
	})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	result, err := repo.EnrollTutor(context.Background(), fullEnrollment())
	if err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}

	if result.TutorID != 7 {
		t.Errorf("TutorID = %d, want 7", result.TutorID)
	}
	if result.LocationID == nil || *result.LocationID != 3 {
		t.Errorf("LocationID = %v, want 3", result.LocationID)
	}
	if result.StudentID == nil || *result.StudentID != 9 {
		t.Errorf("StudentID = %v, want 9", result.StudentID)
	}
	if !result.CityResolved || !result.CourseResolved {
		t.Errorf("resolved flags = (%t, %t), want both true", result.CityResolved, result.CourseResolved)
	}

	// Location must exist before the student row that references it.
	wantOrder := []string{"tutor", "ciudad", "curso", "localizacion", "alumno"}
	if len(tx.stmts) != len(wantOrder) {
		t.Fatalf("statements = %v, want %v", tx.stmts, wantOrder)
	}
	for i, want := range wantOrder {
		if tx.stmts[i] != want {
			t.Errorf("statement[%d] = %s, want %s", i, tx.stmts[i], want)
		}
	}

	if tx.commits != 1 || tx.rollbacks != 0 {
		t.Errorf("commits/rollbacks = %d/%d, want 1/0", tx.commits, tx.rollbacks)
	}

	// The student row references the generated tutor and location ids.
	studentArgs := tx.argsByKey["alumno"]
	if got := studentArgs[6]; got != int64(7) {
		t.Errorf("student id_tutor arg = %v, want 7", got)
	}
	if got := studentArgs[8]; got != int64(3) {
		t.Errorf("student id_localizacion arg = %v, want 3", got)
	}
}

func TestEnrollTutorWithoutStudent(t *testing.T) {
	tx := newScriptedTx(map[string]rowResult{"tutor": {id: 11}})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	enr := fullEnrollment()
	enr.Student = nil

	result, err := repo.EnrollTutor(context.Background(), enr)
	if err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}
	if result.TutorID != 11 {
		t.Errorf("TutorID = %d, want 11", result.TutorID)
	}
	if result.HasStudent() {
		t.Error("HasStudent() = true, want false")
	}
	if result.LocationID != nil {
		t.Errorf("LocationID = %v, want nil", result.LocationID)
	}
	if len(tx.stmts) != 1 || tx.stmts[0] != "tutor" {
		t.Errorf("statements = %v, want only the tutor insert", tx.stmts)
	}
	if tx.commits != 1 || tx.rollbacks != 0 {
		t.Errorf("commits/rollbacks = %d/%d, want 1/0", tx.commits, tx.rollbacks)
	}
}

func TestEnrollTutorBlankStudentNameIsTutorOnly(t *testing.T) {
	tx := newScriptedTx(map[string]rowResult{"tutor": {id: 5}})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	enr := fullEnrollment()
	enr.Student.Name = "   "

	result, err := repo.EnrollTutor(context.Background(), enr)
	if err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}
	if result.HasStudent() {
		t.Error("HasStudent() = true, want false for blank student name")
	}
	if len(tx.stmts) != 1 {
		t.Errorf("statements = %v, want only the tutor insert", tx.stmts)
	}
}

func TestEnrollTutorToleratesReferenceMisses(t *testing.T) {
	tx := newScriptedTx(map[string]rowResult{
		"tutor":        {id: 7},
		"ciudad":       {err: pgx.ErrNoRows},
		"curso":        {err: pgx.ErrNoRows},
		"localizacion": {id: 3},
		"alumno":       {id: 9},
	})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	enr := fullEnrollment()
	enr.CityName = strPtr("Atlantis")
	enr.Student.CourseName = strPtr("9ESO")

	result, err := repo.EnrollTutor(context.Background(), enr)
	if err != nil {
		t.Fatalf("EnrollTutor returned error for reference misses: %v", err)
	}
	if result.CityResolved || result.CourseResolved {
		t.Errorf("resolved flags = (%t, %t), want both false", result.CityResolved, result.CourseResolved)
	}
	if !result.HasStudent() {
		t.Error("HasStudent() = false, want true")
	}

	// Misses persist NULL foreign keys, not errors.
	locArgs := tx.argsByKey["localizacion"]
	if cityArg, ok := locArgs[3].(sql.NullInt64); !ok || cityArg.Valid {
		t.Errorf("location id_ciudad arg = %v, want invalid NullInt64", locArgs[3])
	}
	studentArgs := tx.argsByKey["alumno"]
	if courseArg, ok := studentArgs[7].(sql.NullInt64); !ok || courseArg.Valid {
		t.Errorf("student id_curso arg = %v, want invalid NullInt64", studentArgs[7])
	}
	if tx.commits != 1 || tx.rollbacks != 0 {
		t.Errorf("commits/rollbacks = %d/%d, want 1/0", tx.commits, tx.rollbacks)
	}
}

func TestEnrollTutorRollsBackOnStudentInsertFailure(t *testing.T) {
	storeErr := errors.New("null value in column violates not-null constraint")
	tx := newScriptedTx(map[string]rowResult{
		"tutor":        {id: 7},
		"ciudad":       {id: 2},
		"curso":        {id: 4},
		"localizacion": {id: 3},
		"alumno":       {err: storeErr},
	})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	result, err := repo.EnrollTutor(context.Background(), fullEnrollment())
	if err == nil {
		t.Fatal("expected error when student insert fails")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("error = %v, want wrapped %v", err, storeErr)
	}
	if result != nil {
		t.Errorf("result = %v, want nil after rollback", result)
	}
	// The tutor row inserted earlier in the transaction is rolled back too.
	if tx.rollbacks != 1 || tx.commits != 0 {
		t.Errorf("commits/rollbacks = %d/%d, want 0/1", tx.commits, tx.rollbacks)
	}
}

func TestEnrollTutorRollsBackOnTutorInsertFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	tx := newScriptedTx(map[string]rowResult{"tutor": {err: storeErr}})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	_, err := repo.EnrollTutor(context.Background(), fullEnrollment())
	if !errors.Is(err, storeErr) {
		t.Fatalf("error = %v, want wrapped %v", err, storeErr)
	}
	if tx.rollbacks != 1 || tx.commits != 0 {
		t.Errorf("commits/rollbacks = %d/%d, want 0/1", tx.commits, tx.rollbacks)
	}
	if len(tx.stmts) != 1 {
		t.Errorf("statements = %v, want no statements after the failed insert", tx.stmts)
	}
}

func TestEnrollTutorBeginFailure(t *testing.T) {
	repo := NewEnrollmentRepository(&txBeginnerStub{beginErr: errors.New("pool exhausted")})

	_, err := repo.EnrollTutor(context.Background(), fullEnrollment())
	if err == nil {
		t.Fatal("expected error when transaction cannot begin")
	}
}

func TestEnrollTutorSkipsLookupsForMissingNames(t *testing.T) {
	tx := newScriptedTx(map[string]rowResult{
		"tutor":        {id: 7},
		"localizacion": {id: 3},
		"alumno":       {id: 9},
	})
	repo := NewEnrollmentRepository(&txBeginnerStub{tx: tx})

	enr := fullEnrollment()
	enr.CityName = nil
	enr.Student.CourseName = strPtr("  ")

	result, err := repo.EnrollTutor(context.Background(), enr)
	if err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}
	if result.CityResolved || result.CourseResolved {
		t.Error("resolved flags should be false when names are absent")
	}
	for _, stmt := range tx.stmts {
		if stmt == "ciudad" || stmt == "curso" {
			t.Errorf("unexpected reference lookup %q for missing name", stmt)
		}
	}
}
