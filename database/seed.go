package database

import (
	"database/sql"

	"github.com/mgrabka/preop-intake/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultDoctorUsername = "doctor"
	defaultDoctorPassword = "doctor123"
)

// seedDefaultDoctor creates a first doctor account when the doctor
// table is empty, so a fresh installation is immediately usable.
func seedDefaultDoctor(db *sql.DB) error {
	var count int
	err := db.QueryRow("SELECT count(*) FROM doctor").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultDoctorPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO doctor (username, password_hash, full_name) VALUES (?, ?, ?)",
		defaultDoctorUsername,
		string(hash),
		"Jan Kowalski",
	)
	if err != nil {
		return err
	}

	log.Warnf("db.seed: created default doctor account %q - change its password", defaultDoctorUsername)
	return nil
}
