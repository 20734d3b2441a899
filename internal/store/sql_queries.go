package store

const (
	createCredential = `INSERT INTO credentials (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, active, created_at;`

	credentialExists = `SELECT EXISTS (SELECT 1 FROM credentials WHERE email = $1);`

	findCredentialByEmail = `SELECT id, email, password_hash, active, created_at
    FROM credentials
    WHERE email = $1;`

	updateCredentialPassword = `UPDATE credentials
    SET password_hash = $2
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (credential_id, expires_at)
    VALUES ($1, $2)
    RETURNING id, credential_id, created_at, expires_at, active;`
)
