package output

import (
	"database/sql"
	"fmt"
	"os"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/anl-sim/anl/anl"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// slotRecord is one row of the trace table: a single component's outcome
// action for a single slot.
type slotRecord struct {
	runID     string
	slot      int
	component string
	kind      string
	tic       int
	message   string
}

// SQLiteTrace is a Module that records every slot's chosen outcome to a
// SQLite database, batching inserts the way the teacher's trace writer
// does. Grounded on sarchlab-akita's tracing/sqlite.go SQLiteTraceWriter.
type SQLiteTrace struct {
	Base

	db        *sql.DB
	statement *sql.Stmt
	runID     string
	batchSize int
	buffer    []slotRecord
}

// NewSQLiteTrace opens (creating if necessary) a SQLite database at path
// and prepares it to record a run. Registers a Flush at process exit via
// atexit so a run that ends through os.Exit still persists its buffer.
func NewSQLiteTrace(path string) *SQLiteTrace {
	anl.ConfigFatalIf(path == "", "trace database path must not be empty")

	db, err := sql.Open("sqlite3", path)
	anl.ConfigFatalIf(err != nil, "failed to open trace database %q: %v", path, err)

	t := &SQLiteTrace{
		db:        db,
		runID:     xid.New().String(),
		batchSize: 500,
	}
	t.createSchema()
	t.prepareStatement()

	atexit.Register(func() { t.Flush() })
	return t
}

func (t *SQLiteTrace) createSchema() {
	t.mustExecute(`
		CREATE TABLE IF NOT EXISTS slot_trace (
			run_id    TEXT NOT NULL,
			slot      INTEGER NOT NULL,
			component TEXT NOT NULL,
			kind      TEXT NOT NULL,
			tic       INTEGER NOT NULL,
			message   TEXT NOT NULL DEFAULT ''
		);
	`)
	t.mustExecute(`
		CREATE INDEX IF NOT EXISTS slot_trace_run_slot_index
			ON slot_trace (run_id, slot);
	`)
}

func (t *SQLiteTrace) prepareStatement() {
	stmt, err := t.db.Prepare(
		`INSERT INTO slot_trace (run_id, slot, component, kind, tic, message)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	anl.ConfigFatalIf(err != nil, "failed to prepare trace insert statement: %v", err)
	t.statement = stmt
}

func (t *SQLiteTrace) mustExecute(query string) {
	_, err := t.db.Exec(query)
	anl.ConfigFatalIf(err != nil, "failed to execute %q: %v", query, err)
}

// ResultChosen buffers one row per component for the slot's chosen
// outcome, flushing once the buffer reaches batchSize.
func (t *SQLiteTrace) ResultChosen(slot int, state *anl.NetworkState) {
	state.ForEach(func(c anl.Component, action anl.Action) {
		msg := ""
		if action.Message() != nil {
			msg = action.Message().String()
		}
		t.buffer = append(t.buffer, slotRecord{
			runID: t.runID, slot: slot, component: c.ID(),
			kind: fmt.Sprintf("%v", action.Kind()), tic: action.Tic(), message: msg,
		})
	})
	if len(t.buffer) >= t.batchSize {
		t.Flush()
	}
}

// Flush writes every buffered row to the database in a single
// transaction.
func (t *SQLiteTrace) Flush() {
	if len(t.buffer) == 0 {
		return
	}
	t.mustExecute("BEGIN TRANSACTION")
	for _, r := range t.buffer {
		_, err := t.statement.Exec(r.runID, r.slot, r.component, r.kind, r.tic, r.message)
		anl.ConfigFatalIf(err != nil, "failed to insert trace row: %v", err)
	}
	t.mustExecute("COMMIT TRANSACTION")
	t.buffer = nil
}

// SimulationEnd flushes any remaining buffered rows and closes the
// database connection.
func (t *SQLiteTrace) SimulationEnd() {
	t.Flush()
	if err := t.db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Log: [WARN] failed to close trace database: %v\n", err)
	}
}
