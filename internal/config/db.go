package config

const (
	// EngineSQLite selects the pure go sqlite driver, Name is the database file.
	EngineSQLite = "sqlite"
	// EnginePostgres selects the gorm postgres driver.
	EnginePostgres = "postgres"
	// EngineMySQL selects the gorm mysql driver.
	EngineMySQL = "mysql"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string
}
