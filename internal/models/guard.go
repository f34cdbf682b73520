package models

// GuardAccount is a login for the checkpoint terminal.
// Contrasena holds a bcrypt hash when the account is created through the
// guard service; import restores whatever the backup document carried.
type GuardAccount struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
	Rol        Role   `json:"rol"`
}
