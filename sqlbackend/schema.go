package sqlbackend

// schemaName is the Postgres schema (namespace) every table, trigger, and
// function lives under. Creating it with plain CREATE SCHEMA (no IF NOT
// EXISTS) is what lets Open distinguish a fresh store from a reused one
// via SQLSTATE 42P06.
const schemaName = "braid"

// schemaSQL creates the full relational shape: the content/register
// polymorphic pair behind content_register, the save/commit polymorphic
// pair behind save_parent, and the two entry tables. Column and
// constraint names mirror §4.I; they're descriptive, not load-bearing
// for any external contract.
const schemaSQL = `
CREATE SCHEMA ` + schemaName + `;

CREATE TABLE ` + schemaName + `.content (
	id bytea PRIMARY KEY CHECK (octet_length(id) = 32)
);

CREATE TABLE ` + schemaName + `.register (
	id bytea PRIMARY KEY CHECK (octet_length(id) = 32)
);

CREATE TABLE ` + schemaName + `.content_register (
	id bytea PRIMARY KEY CHECK (octet_length(id) = 32),
	is_content boolean NOT NULL
);

CREATE FUNCTION ` + schemaName + `.propagate_content_register() RETURNS trigger AS $$
BEGIN
	IF NEW.is_content THEN
		INSERT INTO ` + schemaName + `.content (id) VALUES (NEW.id) ON CONFLICT DO NOTHING;
	ELSE
		INSERT INTO ` + schemaName + `.register (id) VALUES (NEW.id) ON CONFLICT DO NOTHING;
	END IF;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql;

CREATE TRIGGER content_register_propagate
	AFTER INSERT ON ` + schemaName + `.content_register
	FOR EACH ROW EXECUTE FUNCTION ` + schemaName + `.propagate_content_register();

CREATE TABLE ` + schemaName + `.register_entry (
	register bytea NOT NULL REFERENCES ` + schemaName + `.register(id),
	key varchar(255) NOT NULL CHECK (key !~ '[\x00\n\r/]'),
	content bytea NOT NULL REFERENCES ` + schemaName + `.content_register(id) CHECK (octet_length(content) = 32),
	is_executable boolean NOT NULL,
	PRIMARY KEY (register, key)
);

CREATE TABLE ` + schemaName + `.save_register (
	id bytea PRIMARY KEY CHECK (octet_length(id) = 32)
);

CREATE TABLE ` + schemaName + `.save_parent (
	id bytea PRIMARY KEY CHECK (octet_length(id) = 32),
	kind smallint NOT NULL CHECK (kind IN (0, 1))
);

CREATE TABLE ` + schemaName + `.save (
	id bytea PRIMARY KEY REFERENCES ` + schemaName + `.save_parent(id),
	author varchar(255) NOT NULL,
	date timestamptz NOT NULL,
	kind smallint NOT NULL CHECK (kind IN (0, 1, 2)),
	content bytea NOT NULL REFERENCES ` + schemaName + `.content(id) CHECK (octet_length(content) = 32),
	parent bytea NOT NULL REFERENCES ` + schemaName + `.save_parent(id) CHECK (octet_length(parent) = 32)
);

CREATE TABLE ` + schemaName + `.save_register_entry (
	save_register bytea NOT NULL REFERENCES ` + schemaName + `.save_register(id),
	key varchar(255) NOT NULL CHECK (key !~ '[\x00\n\r]'),
	save bytea NOT NULL REFERENCES ` + schemaName + `.save(id) CHECK (octet_length(save) = 32),
	PRIMARY KEY (save_register, key, save)
);

CREATE TABLE ` + schemaName + `.commit (
	id bytea PRIMARY KEY REFERENCES ` + schemaName + `.save_parent(id),
	register bytea NOT NULL REFERENCES ` + schemaName + `.register(id) CHECK (octet_length(register) = 32),
	parent bytea REFERENCES ` + schemaName + `.commit(id) CHECK (parent IS NULL OR octet_length(parent) = 32),
	merge_parent bytea REFERENCES ` + schemaName + `.commit(id) CHECK (merge_parent IS NULL OR octet_length(merge_parent) = 32),
	rebase_of bytea REFERENCES ` + schemaName + `.commit(id) CHECK (rebase_of IS NULL OR octet_length(rebase_of) = 32),
	saves bytea NOT NULL REFERENCES ` + schemaName + `.save_register(id) CHECK (octet_length(saves) = 32),
	date timestamptz NOT NULL,
	committer varchar(255) NOT NULL,
	summary text NOT NULL,
	body text NOT NULL
);
`
