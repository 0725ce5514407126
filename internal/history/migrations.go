package history

// migrationsSQL is applied statement by statement on every open; each
// statement must be idempotent
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS documents (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	source          TEXT NOT NULL DEFAULT '',
	input           TEXT NOT NULL,
	statement_count INTEGER NOT NULL DEFAULT 0,
	translated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	idx         INTEGER NOT NULL,
	original    TEXT NOT NULL,
	translation TEXT NOT NULL,
	shape       TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (document_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_documents_translated_at ON documents(translated_at);
`
