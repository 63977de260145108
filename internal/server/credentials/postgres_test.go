package credentials

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+login_table\s*\(user_name,\s*user_psw\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`

	mock.ExpectExec(q).
		WithArgs("ednaldo", "pereira").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), "ednaldo", "pereira"); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
}

func TestPostgresInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+login_table\s*\(user_name,\s*user_psw\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`

	mock.ExpectExec(q).
		WithArgs("ednaldo", "pereira").
		WillReturnError(errors.New("db down"))

	err := repo.Insert(context.Background(), "ednaldo", "pereira")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresQuery_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_name,\s*user_psw\s+FROM\s+login_table\s+WHERE\s+user_name\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"user_name", "user_psw"}).
		AddRow("ednaldo", "pereira")
	mock.ExpectQuery(q).
		WithArgs("ednaldo").
		WillReturnRows(rows)

	got, err := repo.Query(context.Background(), "ednaldo")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(got) != 1 || got[0].UserName != "ednaldo" || got[0].Secret != "pereira" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestPostgresQuery_NotFoundIsEmptyNotError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_name,\s*user_psw\s+FROM\s+login_table\s+WHERE\s+user_name\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_name", "user_psw"}))

	got, err := repo.Query(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestPostgresQuery_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_name,\s*user_psw\s+FROM\s+login_table\s+WHERE\s+user_name\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("ednaldo").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Query(context.Background(), "ednaldo")
	if err == nil || !regexp.MustCompile(`db error: .*connection refused`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresCreateIfAbsent_Inserted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+login_table\s*\(user_name,\s*user_psw\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(user_name\)\s*DO\s+NOTHING\s*$`

	mock.ExpectExec(q).
		WithArgs("ednaldo", "pereira").
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.CreateIfAbsent(context.Background(), "ednaldo", "pereira")
	if err != nil {
		t.Fatalf("CreateIfAbsent error: %v", err)
	}
	if !inserted {
		t.Fatal("expected inserted=true")
	}
}

func TestPostgresCreateIfAbsent_Conflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+login_table\s*\(user_name,\s*user_psw\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(user_name\)\s*DO\s+NOTHING\s*$`

	mock.ExpectExec(q).
		WithArgs("ednaldo", "pereira").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.CreateIfAbsent(context.Background(), "ednaldo", "pereira")
	if err != nil {
		t.Fatalf("CreateIfAbsent error: %v", err)
	}
	if inserted {
		t.Fatal("expected inserted=false on conflict")
	}
}
